package tui

import (
	"github.com/charmbracelet/lipgloss"

	"citizen-dojo/pkg/game"
)

// Styles are the app-level styles; components carry their own.
type Styles struct {
	Title     lipgloss.Style
	Text      lipgloss.Style
	TextMuted lipgloss.Style
	Error     lipgloss.Style

	// ActiveButton marks the selected dialog button.
	ActiveButton lipgloss.Style

	// Panel frames the question tracker while playing.
	Panel  lipgloss.Style
	Dialog lipgloss.Style
}

// NewStyles creates styles from the theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			MarginBottom(1),

		Text: lipgloss.NewStyle().
			Foreground(theme.Text),

		TextMuted: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Wrong),

		ActiveButton: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Panel: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderActive),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(1, 2).
			Align(lipgloss.Center),
	}
}

// CategoryIcon returns the icon for a category.
func CategoryIcon(category game.Category) string {
	switch category {
	case game.CategoryOnlineSafety:
		return "🛡️"
	case game.CategoryMediaLiteracy:
		return "📰"
	case game.CategoryDigitalFootprint:
		return "👣"
	}
	return "📁"
}

// StatusIndicator returns the badge marker for a game.
func StatusIndicator(earned bool) string {
	if earned {
		return "🏅"
	}
	return "○"
}

// DifficultyStars renders a difficulty as stars.
func DifficultyStars(d game.Difficulty) string {
	switch d {
	case game.DifficultyEasy:
		return "★☆☆"
	case game.DifficultyMedium:
		return "★★☆"
	case game.DifficultyHard:
		return "★★★"
	}
	return "☆☆☆"
}
