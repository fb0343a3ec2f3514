package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Mark is the state of one question in the tracker.
type Mark int

const (
	MarkPending Mark = iota
	MarkActive
	MarkRight
	MarkWrong
	MarkTimedOut
)

// Answered reports whether the question has been judged.
func (k Mark) Answered() bool {
	return k >= MarkRight
}

// ProgressModel is the question tracker shown beside a running game.
type ProgressModel struct {
	title   string
	status  string
	score   int
	marks   []Mark
	spinner spinner.Model
	bar     progress.Model
	width   int
	styles  ProgressStyles
}

// ProgressStyles contains styles for the tracker.
type ProgressStyles struct {
	Title    lipgloss.Style
	Status   lipgloss.Style
	Score    lipgloss.Style
	Right    lipgloss.Style
	Wrong    lipgloss.Style
	Active   lipgloss.Style
	Pending  lipgloss.Style
	Question lipgloss.Style
}

// NewProgressStyles creates adaptive tracker styles.
func NewProgressStyles() ProgressStyles {
	primary := lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"}
	accent := lipgloss.AdaptiveColor{Light: "#fe640b", Dark: "#fab387"}
	right := lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"}
	wrong := lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}
	coin := lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"}
	textMuted := lipgloss.AdaptiveColor{Light: "#8c8fa1", Dark: "#6c7086"}

	return ProgressStyles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Status:   lipgloss.NewStyle().Foreground(accent),
		Score:    lipgloss.NewStyle().Bold(true).Foreground(coin),
		Right:    lipgloss.NewStyle().Foreground(right),
		Wrong:    lipgloss.NewStyle().Foreground(wrong),
		Active:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(textMuted),
		Question: lipgloss.NewStyle().Foreground(textMuted),
	}
}

// NewProgressModel creates an empty tracker.
func NewProgressModel() ProgressModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#fe640b", Dark: "#fab387"})

	return ProgressModel{
		spinner: s,
		bar: progress.New(
			progress.WithGradient("#89b4fa", "#a6e3a1"),
			progress.WithWidth(20),
			progress.WithoutPercentage(),
		),
		styles: NewProgressStyles(),
	}
}

// Init starts the spinner.
func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetTitle sets the heading, usually the category.
func (m *ProgressModel) SetTitle(title string) {
	m.title = title
}

// SetStatus sets the line shown next to the spinner; empty hides both.
func (m *ProgressModel) SetStatus(status string) {
	m.status = status
}

// SetMarks sets one mark per question, in play order.
func (m *ProgressModel) SetMarks(marks []Mark, score int) {
	m.marks = append([]Mark(nil), marks...)
	m.score = score
}

// Marks returns the current marks.
func (m ProgressModel) Marks() []Mark {
	return append([]Mark(nil), m.marks...)
}

// Done returns the fraction of questions answered.
func (m ProgressModel) Done() float64 {
	if len(m.marks) == 0 {
		return 0
	}
	n := 0
	for _, k := range m.marks {
		if k.Answered() {
			n++
		}
	}
	return float64(n) / float64(len(m.marks))
}

// SetWidth sets the width.
func (m *ProgressModel) SetWidth(width int) {
	m.width = width
	m.bar.Width = min(max(width-10, 5), 30)
}

// Update advances the spinner.
func (m ProgressModel) Update(msg tea.Msg) (ProgressModel, tea.Cmd) {
	if msg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the tracker.
func (m ProgressModel) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n\n")
	}

	b.WriteString(m.bar.ViewAs(m.Done()))
	b.WriteString("\n")
	b.WriteString(m.styles.Score.Render(fmt.Sprintf("⭐ %d/%d", m.score, len(m.marks))))
	b.WriteString("\n\n")

	for i, k := range m.marks {
		b.WriteString(m.styles.Question.Render(fmt.Sprintf("Q%-2d ", i+1)))
		b.WriteString(m.renderMark(k))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.styles.Status.Render(m.status))
	}

	return b.String()
}

func (m ProgressModel) renderMark(k Mark) string {
	switch k {
	case MarkRight:
		return m.styles.Right.Render("✓ right")
	case MarkWrong:
		return m.styles.Wrong.Render("✗ wrong")
	case MarkTimedOut:
		return m.styles.Wrong.Render("⏰ too slow")
	case MarkActive:
		return m.styles.Active.Render("▸ now")
	}
	return m.styles.Pending.Render("·")
}
