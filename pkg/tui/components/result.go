package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ResultButton is an action offered on the result screen.
type ResultButton string

const (
	ButtonNext  ResultButton = "Next Game"
	ButtonRetry ResultButton = "Try Again"
	ButtonMenu  ResultButton = "Menu"
)

// ResultModel represents the end-of-game screen.
type ResultModel struct {
	gameName string
	earned   bool
	score    int
	total    int
	percent  int
	coins    int
	rule     string
	next     string
	elapsed  time.Duration

	buttons  []ResultButton
	selected int

	width  int
	height int
	styles ResultStyles
}

// ResultStyles contains styles for the result screen.
type ResultStyles struct {
	Title       lipgloss.Style
	TitleFailed lipgloss.Style
	Subtitle    lipgloss.Style
	Stats       lipgloss.Style
	Muted       lipgloss.Style
	Button      lipgloss.Style
	ButtonIdle  lipgloss.Style
	Box         lipgloss.Style
	BoxFailed   lipgloss.Style
}

// NewResultStyles creates adaptive result styles.
func NewResultStyles() ResultStyles {
	text := lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"}
	textMuted := lipgloss.AdaptiveColor{Light: "#8c8fa1", Dark: "#6c7086"}
	primary := lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"}
	secondary := lipgloss.AdaptiveColor{Light: "#209fb5", Dark: "#74c7ec"}
	success := lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"}
	accent := lipgloss.AdaptiveColor{Light: "#fe640b", Dark: "#fab387"}
	textBold := lipgloss.AdaptiveColor{Light: "#eff1f5", Dark: "#1e1e2e"}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(44).
		Align(lipgloss.Center)

	return ResultStyles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(success).
			MarginBottom(2),

		TitleFailed: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(2),

		Subtitle: lipgloss.NewStyle().
			Foreground(text).
			MarginBottom(1),

		Stats: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(textMuted),

		Button: lipgloss.NewStyle().
			Foreground(textBold).
			Background(primary).
			Padding(0, 2).
			Bold(true),

		ButtonIdle: lipgloss.NewStyle().
			Foreground(textMuted).
			Padding(0, 2),

		Box:       box.BorderForeground(success),
		BoxFailed: box.BorderForeground(accent),
	}
}

// NewResultModel creates a new result model.
func NewResultModel() ResultModel {
	return ResultModel{
		styles: NewResultStyles(),
	}
}

// SetGame sets the finished game's name.
func (m *ResultModel) SetGame(name string) {
	m.gameName = name
}

// SetScore sets the final score and what it earned.
func (m *ResultModel) SetScore(score, total, percent int, earned bool, coins int) {
	m.score = score
	m.total = total
	m.percent = percent
	m.earned = earned
	m.coins = coins
}

// SetRule describes the reward rule, e.g. "Score 70% or more".
func (m *ResultModel) SetRule(rule string) {
	m.rule = rule
}

// SetNext names the game "Next" leads to; empty hides it.
func (m *ResultModel) SetNext(name string) {
	m.next = name
}

// SetElapsedTime sets the elapsed time.
func (m *ResultModel) SetElapsedTime(elapsed time.Duration) {
	m.elapsed = elapsed
}

// SetButtons sets the offered actions and selects the first.
func (m *ResultModel) SetButtons(buttons ...ResultButton) {
	m.buttons = buttons
	m.selected = 0
}

// NextButton selects the following button.
func (m *ResultModel) NextButton() {
	if len(m.buttons) > 0 {
		m.selected = (m.selected + 1) % len(m.buttons)
	}
}

// PrevButton selects the preceding button.
func (m *ResultModel) PrevButton() {
	if len(m.buttons) > 0 {
		m.selected = (m.selected - 1 + len(m.buttons)) % len(m.buttons)
	}
}

// SelectedButton returns the selected action.
func (m ResultModel) SelectedButton() ResultButton {
	if m.selected < len(m.buttons) {
		return m.buttons[m.selected]
	}
	return ButtonMenu
}

// HasButton reports whether b is offered.
func (m ResultModel) HasButton(b ResultButton) bool {
	for _, x := range m.buttons {
		if x == b {
			return true
		}
	}
	return false
}

// SetSize sets the dimensions.
func (m *ResultModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the result screen.
func (m ResultModel) View() string {
	var b strings.Builder

	if m.earned {
		b.WriteString(m.styles.Title.Render("🎉  B A D G E   E A R N E D !"))
	} else {
		b.WriteString(m.styles.TitleFailed.Render("💪  K E E P   P R A C T I C I N G"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderBox())
	b.WriteString("\n\n")

	var buttons []string
	for i, btn := range m.buttons {
		if i == m.selected {
			buttons = append(buttons, m.styles.Button.Render(string(btn)))
		} else {
			buttons = append(buttons, m.styles.ButtonIdle.Render("[ "+string(btn)+" ]"))
		}
	}
	b.WriteString(strings.Join(buttons, "  "))

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		b.String(),
	)
}

func (m ResultModel) renderBox() string {
	var b strings.Builder

	b.WriteString(m.styles.Subtitle.Render(m.gameName))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Stats.Render(fmt.Sprintf("✔ Score: %d/%d (%d%%)", m.score, m.total, m.percent)))
	b.WriteString("\n")
	b.WriteString(m.styles.Stats.Render(fmt.Sprintf("⏱ Time: %s", m.elapsed.Round(time.Second))))
	b.WriteString("\n")
	b.WriteString(m.styles.Stats.Render(fmt.Sprintf("🪙 Coins: +%d", m.coins)))
	b.WriteString("\n")
	if m.rule != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(m.rule))
		b.WriteString("\n")
	}
	if m.next != "" {
		b.WriteString(m.styles.Muted.Render("Up next: " + m.next))
	}

	box := m.styles.Box
	if !m.earned {
		box = m.styles.BoxFailed
	}
	return box.Render(b.String())
}
