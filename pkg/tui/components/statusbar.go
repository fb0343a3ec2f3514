package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// StatusBarModel represents the bottom status bar with keybindings.
type StatusBarModel struct {
	keys    []key.Binding
	message string
	width   int
	styles  StatusBarStyles
}

// StatusBarStyles contains styles for the status bar.
type StatusBarStyles struct {
	Container lipgloss.Style
	Key       lipgloss.Style
	Separator lipgloss.Style
	Message   lipgloss.Style
}

// NewStatusBarStyles creates adaptive status bar styles.
func NewStatusBarStyles() StatusBarStyles {
	border := lipgloss.AdaptiveColor{Light: "#bcc0cc", Dark: "#45475a"}
	textMuted := lipgloss.AdaptiveColor{Light: "#8c8fa1", Dark: "#6c7086"}
	accent := lipgloss.AdaptiveColor{Light: "#fe640b", Dark: "#fab387"}
	errorColor := lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}

	return StatusBarStyles{
		Container: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(border).
			Foreground(textMuted),

		Key: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(border),

		Message: lipgloss.NewStyle().
			Foreground(errorColor),
	}
}

// NewStatusBarModel creates a new status bar model.
func NewStatusBarModel() StatusBarModel {
	return StatusBarModel{
		styles: NewStatusBarStyles(),
	}
}

// SetKeys sets the keybindings to display.
func (m *StatusBarModel) SetKeys(keys []key.Binding) {
	m.keys = keys
}

// SetMessage shows msg after the keybindings; empty clears it.
func (m *StatusBarModel) SetMessage(msg string) {
	m.message = msg
}

// SetWidth sets the status bar width.
func (m *StatusBarModel) SetWidth(width int) {
	m.width = width
}

// View renders the status bar.
func (m StatusBarModel) View() string {
	var parts []string

	for _, k := range m.keys {
		if !k.Enabled() {
			continue
		}
		help := k.Help()
		parts = append(parts, m.styles.Key.Render(help.Key)+":"+help.Desc)
	}

	sep := m.styles.Separator.Render("  ")
	content := strings.Join(parts, sep)
	if m.message != "" {
		content += sep + m.styles.Message.Render(m.message)
	}

	return m.styles.Container.
		Width(m.width - 2).
		Render(content)
}
