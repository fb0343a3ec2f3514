// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel represents the top header bar.
type HeaderModel struct {
	title     string
	coins     int
	startTime time.Time
	deadline  time.Time
	now       func() time.Time
	width     int
	styles    HeaderStyles
}

// HeaderStyles contains styles for the header.
type HeaderStyles struct {
	Container lipgloss.Style
	Title     lipgloss.Style
	Coins     lipgloss.Style
	Timer     lipgloss.Style
	Countdown lipgloss.Style
}

// NewHeaderStyles creates adaptive header styles.
func NewHeaderStyles() HeaderStyles {
	border := lipgloss.AdaptiveColor{Light: "#bcc0cc", Dark: "#45475a"}
	primary := lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"}
	warning := lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"}
	accent := lipgloss.AdaptiveColor{Light: "#fe640b", Dark: "#fab387"}
	errorColor := lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}
	textBold := lipgloss.AdaptiveColor{Light: "#eff1f5", Dark: "#1e1e2e"}

	return HeaderStyles{
		Container: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(border),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Coins: lipgloss.NewStyle().
			Bold(true).
			Foreground(textBold).
			Background(warning).
			Padding(0, 1),

		Timer: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Countdown: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
	}
}

// NewHeaderModel creates a new header model.
func NewHeaderModel() HeaderModel {
	return HeaderModel{
		title:  DefaultTitle,
		now:    time.Now,
		styles: NewHeaderStyles(),
	}
}

// DefaultTitle is shown on the dashboard.
const DefaultTitle = "🦉 Citizen Dojo"

// SetTitle sets the header title.
func (m *HeaderModel) SetTitle(title string) {
	m.title = title
}

// SetCoins sets the coin balance.
func (m *HeaderModel) SetCoins(coins int) {
	m.coins = coins
}

// SetWidth sets the header width.
func (m *HeaderModel) SetWidth(width int) {
	m.width = width
}

// SetClock replaces time.Now.
func (m *HeaderModel) SetClock(now func() time.Time) {
	m.now = now
}

// StartTimer starts the elapsed time timer.
func (m *HeaderModel) StartTimer() {
	m.startTime = m.now()
}

// ResetTimer resets the timer and any countdown.
func (m *HeaderModel) ResetTimer() {
	m.startTime = time.Time{}
	m.deadline = time.Time{}
}

// SetDeadline shows a countdown to t. A zero t hides it.
func (m *HeaderModel) SetDeadline(t time.Time) {
	m.deadline = t
}

// ElapsedTime returns the elapsed time since timer started.
func (m HeaderModel) ElapsedTime() time.Duration {
	if m.startTime.IsZero() {
		return 0
	}
	return m.now().Sub(m.startTime)
}

// Remaining returns the time left on the countdown.
func (m HeaderModel) Remaining() time.Duration {
	if m.deadline.IsZero() {
		return 0
	}
	left := m.deadline.Sub(m.now())
	if left < 0 {
		return 0
	}
	return left
}

// View renders the header.
func (m HeaderModel) View() string {
	left := m.styles.Title.Render(m.title)

	right := m.styles.Coins.Render(fmt.Sprintf("🪙 %d", m.coins))
	if !m.deadline.IsZero() {
		right += "  " + m.styles.Countdown.Render(fmt.Sprintf("⚡ %.1fs", m.Remaining().Seconds()))
	}
	if !m.startTime.IsZero() {
		elapsed := m.ElapsedTime().Round(time.Second)
		right += "  " + m.styles.Timer.Render(fmt.Sprintf("⏱ %s", elapsed))
	}

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	spacerWidth := m.width - leftWidth - rightWidth - 4 // -4 for padding

	if spacerWidth < 0 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)

	return m.styles.Container.Width(m.width - 2).Render(content)
}
