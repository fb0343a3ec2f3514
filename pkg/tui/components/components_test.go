package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultButtons(t *testing.T) {
	m := NewResultModel()
	assert.Equal(t, ButtonMenu, m.SelectedButton())

	m.SetButtons(ButtonRetry, ButtonMenu)
	assert.False(t, m.HasButton(ButtonNext))
	assert.Equal(t, ButtonRetry, m.SelectedButton())

	m.NextButton()
	assert.Equal(t, ButtonMenu, m.SelectedButton())
	m.NextButton()
	assert.Equal(t, ButtonRetry, m.SelectedButton())
	m.PrevButton()
	assert.Equal(t, ButtonMenu, m.SelectedButton())

	m.SetButtons(ButtonNext, ButtonRetry, ButtonMenu)
	assert.Equal(t, ButtonNext, m.SelectedButton())
}

func TestContentCursor(t *testing.T) {
	m := NewContentModel()
	m.SetQuestion(1, 3, "Which password is strongest?", []string{"a", "b", "c"})

	m.MoveCursor(-1)
	assert.Equal(t, 2, m.Cursor())
	m.MoveCursor(1)
	assert.Equal(t, 0, m.Cursor())

	assert.False(t, m.SetCursor(3))
	assert.True(t, m.SetCursor(1))

	// Same question again keeps the cursor; a new one resets it.
	m.SetQuestion(1, 3, "Which password is strongest?", []string{"a", "b", "c"})
	assert.Equal(t, 1, m.Cursor())
	m.SetQuestion(2, 3, "Is it safe to share?", []string{"Yes", "No"})
	assert.Equal(t, 0, m.Cursor())
}

func TestProgressMarks(t *testing.T) {
	m := NewProgressModel()
	assert.Zero(t, m.Done())

	m.SetMarks([]Mark{MarkRight, MarkTimedOut, MarkActive, MarkPending}, 1)
	assert.InDelta(t, 0.5, m.Done(), 1e-9)
	assert.Contains(t, m.View(), "too slow")
	assert.Contains(t, m.View(), "1/4")

	assert.True(t, MarkWrong.Answered())
	assert.False(t, MarkActive.Answered())
}

func TestSidebarKeepsSelection(t *testing.T) {
	items := []SidebarItem{
		{ID: "online-safety", Title: "Online Safety", IsCategory: true, Children: []SidebarItem{
			{ID: "password-power", Title: "Password Power", BestScore: -1},
			{ID: "stranger-chat", Title: "Stranger Chat", BestScore: -1},
		}},
	}

	m := NewSidebarModel()
	m.SetFocus(true)
	m.SetSize(30, 20)
	m.SetItems(items)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.Equal(t, "stranger-chat", m.SelectedItem().ID)

	items[0].Children[1].Completed = true
	items[0].Children[1].BestScore = 100
	m.SetItems(items)
	assert.Equal(t, "stranger-chat", m.SelectedItem().ID)
	assert.Contains(t, m.View(), "1/2 badges")
	assert.Contains(t, m.View(), "100%")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Password Power", truncate("Password Power", 20))
	assert.Equal(t, "Passwor..", truncate("Password Power", 9))
	assert.Equal(t, "Password Power", truncate("Password Power", 3))
}
