// Package model holds the Bubble Tea models of the pagehost terminal UI.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/cli/styles"
	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/host"
)

const alertTitle = "Oops"

// BrowseController is the part of host.Controller the browse view drives.
type BrowseController interface {
	Snapshot() host.Snapshot
	Changed() <-chan struct{}
	Back(ctx context.Context) error
	Forward(ctx context.Context) error
	ScrollToTop(ctx context.Context) error
	DismissAlert()
	ToggleBackground(ctx context.Context) (bool, error)
	Export(ctx context.Context, formats []entity.ExportFormat) (*usecase.ExportPageOutput, error)
}

// BrowseModel renders one host-controlled page.
type BrowseModel struct {
	ctx   context.Context
	ctrl  BrowseController
	theme *styles.Theme
	keys  styles.BrowseKeyMap
	help  help.Model

	spinner  spinner.Model
	snap     host.Snapshot
	status   string
	quitting bool
	width    int
	height   int

	// showDescription is the description popover; it only opens when the
	// page has one.
	showDescription bool
}

// NewBrowseModel creates the browse view for ctrl.
func NewBrowseModel(ctx context.Context, theme *styles.Theme, ctrl BrowseController) BrowseModel {
	return BrowseModel{
		ctx:     ctx,
		ctrl:    ctrl,
		theme:   theme,
		keys:    styles.DefaultBrowseKeyMap(),
		help:    styles.NewHelp(theme),
		spinner: styles.NewDefaultSpinner(theme),
		snap:    ctrl.Snapshot(),
		width:   80,
		height:  24,
	}
}

// snapshotMsg carries a fresh controller snapshot.
type snapshotMsg struct {
	snap host.Snapshot
}

// actionDoneMsg reports the outcome of a page action.
type actionDoneMsg struct {
	status string
	err    error
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForChange())
}

// waitForChange blocks until the controller signals a change.
func (m BrowseModel) waitForChange() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return tea.Quit()
		case <-ctrl.Changed():
			return snapshotMsg{snap: ctrl.Snapshot()}
		}
	}
}

func (m BrowseModel) action(run func(ctx context.Context) (string, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		status, err := run(ctx)
		return actionDoneMsg{status: status, err: err}
	}
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		m.snap = msg.snap
		if !m.snap.HasDescription {
			m.showDescription = false
		}
		return m, m.waitForChange()

	case actionDoneMsg:
		if msg.err != nil {
			m.status = m.theme.ErrorStyle.Render(msg.err.Error())
		} else {
			m.status = msg.status
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// The alert modal captures input until dismissed.
	if m.snap.HasAlert {
		if key.Matches(msg, m.keys.Confirm) {
			m.ctrl.DismissAlert()
			m.snap.Alert, m.snap.HasAlert = "", false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Back):
		if m.snap.State.CanGoBack {
			return m, m.action(func(ctx context.Context) (string, error) {
				return "", m.ctrl.Back(ctx)
			})
		}

	case key.Matches(msg, m.keys.Forward):
		if m.snap.State.CanGoForward {
			return m, m.action(func(ctx context.Context) (string, error) {
				return "", m.ctrl.Forward(ctx)
			})
		}

	case key.Matches(msg, m.keys.ScrollToTop):
		if m.snap.Scroll.ShowScrollToTop {
			return m, m.action(func(ctx context.Context) (string, error) {
				return "", m.ctrl.ScrollToTop(ctx)
			})
		}

	case key.Matches(msg, m.keys.Background):
		return m, m.action(func(ctx context.Context) (string, error) {
			shown, err := m.ctrl.ToggleBackground(ctx)
			if err != nil {
				return "", err
			}
			if shown {
				return "background shown", nil
			}
			return "background hidden", nil
		})

	case key.Matches(msg, m.keys.Description):
		if m.snap.HasDescription {
			m.showDescription = !m.showDescription
		}

	case key.Matches(msg, m.keys.Share):
		m.status = "rendering image…"
		return m, m.export(entity.ExportPNG)

	case key.Matches(msg, m.keys.ExportPDF):
		m.status = "rendering pdf…"
		return m, m.export(entity.ExportPDF)
	}

	return m, nil
}

func (m BrowseModel) export(format entity.ExportFormat) tea.Cmd {
	return m.action(func(ctx context.Context) (string, error) {
		out, err := m.ctrl.Export(ctx, []entity.ExportFormat{format})
		if err != nil {
			return "", err
		}
		return exportStatus(out), nil
	})
}

func exportStatus(out *usecase.ExportPageOutput) string {
	if out == nil || len(out.Artifacts) == 0 {
		return "nothing exported"
	}
	paths := make([]string, 0, len(out.Artifacts))
	for _, a := range out.Artifacts {
		if a.Path != "" {
			paths = append(paths, a.Path)
		} else {
			paths = append(paths, fmt.Sprintf("%s (%d bytes)", a.Format, len(a.Data)))
		}
	}
	return "saved " + strings.Join(paths, ", ")
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme

	if m.snap.HasAlert {
		return m.renderAlert()
	}

	sections := []string{m.renderHeader(), ""}

	if m.snap.State.IsLoading {
		sections = append(sections, t.Loading(m.spinner, "Loading…"))
	} else {
		sections = append(sections, m.renderBody())
	}

	sections = append(sections, "", m.renderToolbar())
	if m.snap.Err != nil {
		sections = append(sections, t.ErrorStyle.Render(m.snap.Err.Error()))
	}
	if m.status != "" {
		sections = append(sections, t.Subtle.Render(m.status))
	}
	sections = append(sections, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BrowseModel) renderHeader() string {
	title := m.snap.State.Title
	if title == "" {
		title = m.snap.State.URL
	}
	if title == "" {
		title = "pagehost"
	}
	width := m.width - 2
	if width < 10 {
		width = 10
	}
	return m.theme.HeaderBar.Width(width).Render(styles.Truncate(title, width-2))
}

func (m BrowseModel) renderBody() string {
	t := m.theme
	lines := []string{t.Subtle.Render(styles.Truncate(m.snap.State.URL, m.width-2))}
	if m.showDescription && m.snap.HasDescription {
		desc := lipgloss.NewStyle().Width(m.width - 4).Render(m.snap.Description)
		lines = append(lines, "", t.Normal.Render(desc))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m BrowseModel) renderToolbar() string {
	t := m.theme
	st := m.snap.State
	buttons := []string{
		t.ButtonStyle(st.CanGoBack).Render(styles.IconArrowLeft + " back"),
		t.ButtonStyle(st.CanGoForward).Render("forward " + styles.IconArrowRight),
		t.Button.Render(styles.IconShare + " share"),
		t.ButtonStyle(m.snap.HasDescription).Render(styles.IconInfo + " info"),
		t.Button.Render(styles.IconPaint + " " + backgroundLabel(m.snap.Background)),
	}
	if m.snap.Scroll.ShowScrollToTop {
		buttons = append(buttons, t.ButtonFocused.Render(styles.IconArrowUp+" top"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(buttons, " "))
}

// backgroundLabel names the action the background button performs.
func backgroundLabel(shown bool) string {
	if shown {
		return "hide"
	}
	return "show"
}

func (m BrowseModel) renderAlert() string {
	t := m.theme
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		t.WarningStyle.Bold(true).Render(alertTitle),
		"",
		t.Normal.Render(m.snap.Alert),
		"",
		t.ButtonFocused.Render("OK"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, t.Modal.Render(body))
}
