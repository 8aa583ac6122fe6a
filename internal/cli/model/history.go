package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/cli/styles"
	"github.com/bnema/pagehost/internal/domain/entity"
)

// NavigationLister lists the navigation log.
type NavigationLister interface {
	List(ctx context.Context, input usecase.NavigationLogInput) (*usecase.NavigationLogOutput, error)
}

// HistoryModel displays the navigation log.
type HistoryModel struct {
	ctx    context.Context
	lister NavigationLister
	input  usecase.NavigationLogInput
	theme  *styles.Theme
	keys   styles.HistoryKeyMap
	help   help.Model

	spinner spinner.Model
	table   table.Model
	output  *usecase.NavigationLogOutput
	loading bool
	err     error
	width   int
	height  int
}

// NewHistoryModel creates the navigation log viewer.
func NewHistoryModel(ctx context.Context, theme *styles.Theme, lister NavigationLister, input usecase.NavigationLogInput) HistoryModel {
	return HistoryModel{
		ctx:     ctx,
		lister:  lister,
		input:   input,
		theme:   theme,
		keys:    styles.DefaultHistoryKeyMap(),
		help:    styles.NewHelp(theme),
		spinner: styles.NewDefaultSpinner(theme),
		loading: true,
		width:   100,
		height:  24,
	}
}

// historyLoadedMsg is sent when the log is loaded.
type historyLoadedMsg struct {
	output *usecase.NavigationLogOutput
	err    error
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m HistoryModel) load() tea.Cmd {
	ctx, lister, input := m.ctx, m.lister, m.input
	return func() tea.Msg {
		out, err := lister.List(ctx, input)
		return historyLoadedMsg{output: out, err: err}
	}
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateTable()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.load())
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.output = msg.output
			m.updateTable()
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *HistoryModel) updateTable() {
	if m.output == nil {
		return
	}
	rows := make([]table.Row, len(m.output.Records))
	for i, rec := range m.output.Records {
		rows[i] = styles.NavigationRow(rec)
	}

	// Header rows count against the table height.
	height := len(rows) + 2
	if height > m.height-8 {
		height = m.height - 8
	}
	if height < 3 {
		height = 3
	}
	m.table = styles.NewStyledTable(m.theme, styles.NavigationTableColumns(), rows, m.width-4, height)
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	t := m.theme

	if m.loading {
		return t.Box.Render(t.Loading(m.spinner, "Loading navigation log…"))
	}
	if m.err != nil {
		return t.Box.Render(t.ErrorStyle.Render("Error: " + m.err.Error()))
	}
	if m.output == nil || len(m.output.Records) == 0 {
		return t.Box.Render(t.Subtle.Render("No navigation recorded yet"))
	}

	stats := m.output.Stats
	if stats == nil {
		stats = &entity.NavigationStats{}
	}
	header := lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title.Render("Navigation log"),
		"",
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			t.Badge.Render(fmt.Sprintf("%d allowed", stats.Allowed)),
			" ",
			t.BadgeMuted.Render(fmt.Sprintf("%d cancelled", stats.Cancelled)),
			" ",
			t.BadgeMuted.Render(fmt.Sprintf("%d total", stats.Total)),
		),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)
}
