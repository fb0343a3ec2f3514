package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Judgement is how the last answer was judged, for highlighting.
type Judgement struct {
	Chosen      int // index into the answers, -1 when nothing was picked
	Correct     int // index of the right answer, -1 when unknown
	Positive    bool
	TimedOut    bool
	Explanation string
}

// ContentModel represents the main content panel: the game intro on the
// dashboard and the current question while playing.
type ContentModel struct {
	title       string
	description string
	details     []string

	prompt    string
	answers   []string
	number    int
	total     int
	cursor    int
	judgement *Judgement
	status    string

	viewport viewport.Model
	width    int
	height   int
	focused  bool
	styles   ContentStyles
}

// ContentStyles contains styles for the content panel.
type ContentStyles struct {
	Container     lipgloss.Style
	FocusedBorder lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Label         lipgloss.Style
	Text          lipgloss.Style
	Prompt        lipgloss.Style
	Answer        lipgloss.Style
	AnswerActive  lipgloss.Style
	AnswerRight   lipgloss.Style
	AnswerWrong   lipgloss.Style
	FlashOK       lipgloss.Style
	FlashError    lipgloss.Style
	HintBox       lipgloss.Style
	Muted         lipgloss.Style
}

// NewContentStyles creates adaptive content styles.
func NewContentStyles() ContentStyles {
	border := lipgloss.AdaptiveColor{Light: "#bcc0cc", Dark: "#45475a"}
	activeBorder := lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"}
	text := lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"}
	textMuted := lipgloss.AdaptiveColor{Light: "#8c8fa1", Dark: "#6c7086"}
	textBold := lipgloss.AdaptiveColor{Light: "#eff1f5", Dark: "#1e1e2e"}
	primary := lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"}
	secondary := lipgloss.AdaptiveColor{Light: "#209fb5", Dark: "#74c7ec"}
	accent := lipgloss.AdaptiveColor{Light: "#fe640b", Dark: "#fab387"}
	success := lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"}
	errorColor := lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}
	warning := lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"}

	return ContentStyles{
		Container: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border),

		FocusedBorder: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(activeBorder),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(secondary),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Text: lipgloss.NewStyle().
			Foreground(text),

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),

		Answer: lipgloss.NewStyle().
			Foreground(text).
			Padding(0, 1),

		AnswerActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(textBold).
			Background(primary).
			Padding(0, 1),

		AnswerRight: lipgloss.NewStyle().
			Bold(true).
			Foreground(textBold).
			Background(success).
			Padding(0, 1),

		AnswerWrong: lipgloss.NewStyle().
			Bold(true).
			Foreground(textBold).
			Background(errorColor).
			Padding(0, 1),

		FlashOK: lipgloss.NewStyle().
			Bold(true).
			Foreground(success),

		FlashError: lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor),

		HintBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warning).
			Padding(0, 1).
			MarginTop(1),

		Muted: lipgloss.NewStyle().
			Foreground(textMuted),
	}
}

// NewContentModel creates a new content model.
func NewContentModel() ContentModel {
	return ContentModel{
		styles:   NewContentStyles(),
		viewport: viewport.New(0, 0),
	}
}

// SetGame sets the game heading and clears any question.
func (m *ContentModel) SetGame(title, description string, details ...string) {
	m.title = title
	m.description = description
	m.details = details
	m.prompt = ""
	m.answers = nil
	m.judgement = nil
	m.status = ""
	m.viewport.GotoTop()
}

// SetQuestion shows question number (1-based) of total.
func (m *ContentModel) SetQuestion(number, total int, prompt string, answers []string) {
	if m.prompt != prompt || m.number != number {
		m.cursor = 0
		m.viewport.GotoTop()
	}
	m.number = number
	m.total = total
	m.prompt = prompt
	m.answers = answers
}

// SetJudgement highlights the judged answer; nil clears it.
func (m *ContentModel) SetJudgement(j *Judgement) {
	m.judgement = j
}

// SetStatus sets a one-line status under the answers.
func (m *ContentModel) SetStatus(status string) {
	m.status = status
}

// MoveCursor moves the answer cursor by delta, wrapping around.
func (m *ContentModel) MoveCursor(delta int) {
	if len(m.answers) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.answers)) % len(m.answers)
}

// SetCursor moves the answer cursor to i if it is in range.
func (m *ContentModel) SetCursor(i int) bool {
	if i < 0 || i >= len(m.answers) {
		return false
	}
	m.cursor = i
	return true
}

// Cursor returns the highlighted answer index.
func (m ContentModel) Cursor() int {
	return m.cursor
}

// SetSize sets the content dimensions.
func (m *ContentModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 6
	m.viewport.Height = height - 4
}

// SetFocus sets the focus state.
func (m *ContentModel) SetFocus(focused bool) {
	m.focused = focused
}

// IsFocused returns the focus state.
func (m ContentModel) IsFocused() bool {
	return m.focused
}

// Update scrolls the panel.
func (m ContentModel) Update(msg tea.Msg) (ContentModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the content panel.
func (m ContentModel) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n")
		if m.width > 6 {
			b.WriteString(m.styles.Muted.Render(strings.Repeat("─", m.width-6)))
		}
		b.WriteString("\n\n")
	}

	if m.prompt == "" {
		m.renderIntro(&b)
	} else {
		m.renderQuestion(&b)
	}

	vp := m.viewport
	vp.SetContent(b.String())

	container := m.styles.Container
	if m.focused {
		container = m.styles.FocusedBorder
	}

	return container.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(vp.View())
}

func (m ContentModel) renderIntro(b *strings.Builder) {
	if m.description != "" {
		b.WriteString(m.styles.Text.Render(m.description))
		b.WriteString("\n\n")
	}
	for _, d := range m.details {
		b.WriteString(m.styles.Subtitle.Render(d))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render(m.status))
	}
}

func (m ContentModel) renderQuestion(b *strings.Builder) {
	b.WriteString(m.styles.Label.Render(fmt.Sprintf("QUESTION %d OF %d", m.number, m.total)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Prompt.Width(max(m.width-8, 10)).Render(m.prompt))
	b.WriteString("\n\n")

	for i, a := range m.answers {
		label := fmt.Sprintf("%d. %s", i+1, a)
		style := m.styles.Answer
		switch {
		case m.judgement != nil && i == m.judgement.Correct:
			style = m.styles.AnswerRight
		case m.judgement != nil && i == m.judgement.Chosen:
			style = m.styles.AnswerWrong
		case m.judgement == nil && i == m.cursor:
			style = m.styles.AnswerActive
		}
		b.WriteString("  " + style.Render(label))
		b.WriteString("\n")
	}

	if j := m.judgement; j != nil {
		b.WriteString("\n")
		switch {
		case j.Positive:
			b.WriteString(m.styles.FlashOK.Render("✓ Correct! +1"))
		case j.TimedOut:
			b.WriteString(m.styles.FlashError.Render("⏰ Too slow!"))
		default:
			b.WriteString(m.styles.FlashError.Render("✗ Not quite"))
		}
		b.WriteString("\n")
		if j.Explanation != "" {
			b.WriteString(m.styles.HintBox.Width(max(m.width-10, 10)).Render(
				m.styles.Text.Render("💡 " + j.Explanation)))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(m.status))
	}
}
