package styles

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// NewDefaultSpinner returns the accent-colored spinner shared by the views.
func NewDefaultSpinner(theme *Theme) spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
	)
}

// Loading renders a spinner frame followed by a muted message.
func (t *Theme) Loading(s spinner.Model, message string) string {
	return lipgloss.JoinHorizontal(lipgloss.Center, s.View(), " ", t.Subtle.Render(message))
}
