package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pagehost/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// NavigationTableColumns returns columns for the navigation log table.
func NavigationTableColumns() []table.Column {
	return []table.Column{
		{Title: "When", Width: 10},
		{Title: "Decision", Width: 8},
		{Title: "Reason", Width: 13},
		{Title: "Host", Width: 24},
		{Title: "URL", Width: 48},
	}
}

// NavigationRow converts a navigation record to a table row.
func NavigationRow(rec *entity.NavigationRecord) table.Row {
	reason := string(rec.Reason)
	if rec.Subframe {
		reason += "*"
	}
	return table.Row{
		RelativeTime(rec.CreatedAt),
		rec.Decision.String(),
		reason,
		Truncate(rec.Host, 24),
		Truncate(rec.URL, 48),
	}
}
