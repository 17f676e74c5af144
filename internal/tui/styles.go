package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/blackmichael/explore-feed/internal/theme"
)

// Styles are the chrome styles around the rendered feed, derived from the
// design tokens so the terminal matches the app palette.
type Styles struct {
	StatusBar lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
	Focused   lipgloss.Style
}

// NewStyles builds the chrome styles for t.
func NewStyles(t *theme.Tokens) Styles {
	primary := lipgloss.Color(t.Colors.Primary)
	secondary := lipgloss.Color(t.Colors.TextSecondary)

	return Styles{
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Colors.TextPrimary)).
			Background(lipgloss.Color(t.Colors.BackgroundLight)).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(secondary),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Colors.Error)).
			Bold(true),
		Focused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(primary).
			PaddingLeft(1),
	}
}
