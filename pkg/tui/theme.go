package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the TUI.
type Theme struct {
	Primary lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor
	Wrong   lipgloss.AdaptiveColor

	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor

	BorderActive lipgloss.AdaptiveColor
}

// DefaultTheme returns the default theme. Dark mode follows Catppuccin Mocha,
// light mode Catppuccin Latte.
func DefaultTheme() Theme {
	return Theme{
		Primary: lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"}, // blue
		Accent:  lipgloss.AdaptiveColor{Light: "#fe640b", Dark: "#fab387"}, // peach
		Wrong:   lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}, // red

		Text:      lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"},
		TextMuted: lipgloss.AdaptiveColor{Light: "#8c8fa1", Dark: "#6c7086"},

		BorderActive: lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"},
	}
}
