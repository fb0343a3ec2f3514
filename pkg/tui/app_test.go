package tui

import (
	"context"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/clock"

	"citizen-dojo/pkg/engine"
	"citizen-dojo/pkg/game"
	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/state"
	"citizen-dojo/pkg/tui/components"
)

// stepClock holds AfterFunc callbacks until fire is called.
type stepClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*stepTimer
}

type stepTimer struct {
	fn   func()
	done bool
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) AfterFunc(_ time.Duration, f func()) clock.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &stepTimer{fn: f}
	c.timers = append(c.timers, t)
	return t
}

// fire runs every pending callback once.
func (c *stepClock) fire() {
	c.mu.Lock()
	c.now = c.now.Add(time.Second)
	var due []*stepTimer
	for _, t := range c.timers {
		if !t.done {
			t.done = true
			due = append(due, t)
		}
	}
	c.timers = nil
	c.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

func (t *stepTimer) C() <-chan time.Time { return nil }

func (t *stepTimer) Stop() bool {
	active := !t.done
	t.done = true
	return active
}

func (t *stepTimer) Reset(time.Duration) bool {
	active := !t.done
	t.done = false
	return active
}

type harness struct {
	t   *testing.T
	m   AppModel
	eng *engine.Engine
	clk *stepClock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	mgr, err := state.NewManager(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	clk := &stepClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	reg := game.NewRegistry()
	eng := engine.NewEngine(reg, engine.WithClock(clk), engine.WithRecorder(mgr))
	t.Cleanup(eng.Leave)

	h := &harness{t: t, m: NewAppModel(eng, reg), eng: eng, clk: clk}
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

// send delivers msg and runs any returned command that produces one of the
// model's own messages.
func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	h.m = next.(AppModel)
	h.run(cmd)
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case settledMsg, progressLoadedMsg:
		h.send(msg)
	}
}

func (h *harness) press(k string) {
	h.t.Helper()
	switch k {
	case "enter":
		h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		h.send(tea.KeyMsg{Type: tea.KeyEsc})
	default:
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

// advance lets the feedback timer fire and tells the model about it.
func (h *harness) advance() {
	h.t.Helper()
	h.clk.fire()
	s := h.eng.Session()
	require.NotNil(h.t, s)
	h.send(SessionChangedMsg{Snapshot: s.Snapshot()})
}

// answerAll answers every question, right when correct is true.
func (h *harness) answerAll(correct bool) {
	h.t.Helper()
	s := h.eng.Session()
	require.NotNil(h.t, s)
	for {
		current, ok := s.Current()
		if !ok {
			return
		}
		solution, ok := current.Solution()
		require.True(h.t, ok)

		pick := -1
		for i, a := range current.Answers() {
			if (a.Choice == solution) == correct {
				pick = i
				break
			}
		}
		require.GreaterOrEqual(h.t, pick, 0)
		h.press(strconv.Itoa(pick + 1))
		require.True(h.t, s.Snapshot().Answered)
		h.advance()
	}
}

func TestDashboardPreview(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, ViewDashboard, h.m.view)
	assert.Contains(t, h.m.View(), "Online Safety")

	h.press("j")
	item := h.m.sidebar.SelectedItem()
	require.NotNil(t, item)
	assert.Equal(t, "password-power", item.ID)
	assert.Contains(t, h.m.View(), "Password Power")
	assert.Contains(t, h.m.View(), "Press Enter to start")
}

func TestPlayToResultAndNext(t *testing.T) {
	h := newHarness(t)
	h.press("j")
	h.press("enter")
	require.Equal(t, ViewPlaying, h.m.view)
	assert.Equal(t, "password-power", h.eng.GetCurrentGame().GetMetadata().ID)

	h.answerAll(true)

	require.Equal(t, ViewResult, h.m.view)
	require.NotNil(t, h.m.completion)
	assert.True(t, h.m.completion.Outcome.Earned)
	assert.True(t, h.m.result.HasButton(components.ButtonNext))
	assert.True(t, h.m.completedGames["password-power"])
	assert.Equal(t, 50, h.m.coins)
	for _, k := range h.m.progress.Marks() {
		assert.Equal(t, components.MarkRight, k)
	}

	h.press("n")
	require.Equal(t, ViewPlaying, h.m.view)
	assert.Equal(t, "stranger-chat", h.eng.GetCurrentGame().GetMetadata().ID)
	assert.Empty(t, h.m.marks)
}

func TestFailedPerfectOnlyOffersRetry(t *testing.T) {
	h := newHarness(t)
	h.press("j")
	h.press("j")
	h.press("enter")
	require.Equal(t, "stranger-chat", h.eng.GetCurrentGame().GetMetadata().ID)

	h.answerAll(false)

	require.Equal(t, ViewResult, h.m.view)
	assert.False(t, h.m.completion.Outcome.Earned)
	assert.False(t, h.m.completion.CanContinue())
	assert.False(t, h.m.result.HasButton(components.ButtonNext))

	// "n" does nothing without a next game.
	h.press("n")
	assert.Equal(t, ViewResult, h.m.view)

	h.press("r")
	require.Equal(t, ViewPlaying, h.m.view)
	snap := h.eng.Session().Snapshot()
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, 0, snap.Score)
}

func TestLeaveMidGame(t *testing.T) {
	h := newHarness(t)
	h.press("j")
	h.press("enter")
	h.press("1")
	require.True(t, h.eng.Session().Snapshot().Answered)

	h.press("esc")
	assert.Equal(t, ViewDashboard, h.m.view)
	assert.Nil(t, h.eng.Session())
	assert.Equal(t, engine.StateIdle, h.eng.GetState())

	// The cancelled feedback timer must not revive anything.
	h.clk.fire()
	assert.Equal(t, engine.StateIdle, h.eng.GetState())
}

func TestInputLockedDuringFeedback(t *testing.T) {
	h := newHarness(t)
	h.press("j")
	h.press("enter")

	h.press("1")
	first := h.eng.Session().Snapshot()
	require.True(t, first.Answered)

	h.press("2")
	h.press("enter")
	assert.Equal(t, first, h.eng.Session().Snapshot())
}

func TestReplayConfirm(t *testing.T) {
	h := newHarness(t)
	h.press("j")
	h.press("enter")
	h.answerAll(true)
	h.press("m")
	require.Equal(t, ViewDashboard, h.m.view)

	item := h.m.sidebar.SelectedItem()
	require.NotNil(t, item)
	assert.Equal(t, "password-power", item.ID)
	assert.True(t, item.Completed)

	h.press("enter")
	require.Equal(t, ViewConfirmReplay, h.m.view)
	assert.Contains(t, h.m.View(), "Play Again?")

	h.press("n")
	assert.Equal(t, ViewDashboard, h.m.view)
	assert.Nil(t, h.eng.Session())

	h.press("enter")
	h.press("y")
	assert.Equal(t, ViewPlaying, h.m.view)
	assert.Equal(t, "password-power", h.eng.GetCurrentGame().GetMetadata().ID)
}

func TestQuitConfirm(t *testing.T) {
	h := newHarness(t)
	h.press("j")
	h.press("enter")

	h.press("q")
	require.Equal(t, ViewConfirmQuit, h.m.view)
	assert.Contains(t, h.m.View(), "will not be saved")

	h.press("esc")
	assert.Equal(t, ViewPlaying, h.m.view)

	h.press("q")
	next, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	h.m = next.(AppModel)
	assert.True(t, h.m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Nil(t, h.eng.Session())
}

func TestTooSmall(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Equal(t, ViewDashboard, h.m.view)
	assert.Contains(t, h.m.View(), "Terminal too small")
}

func TestRuleText(t *testing.T) {
	assert.Equal(t, "Get every answer right to earn the badge", ruleText(reward.PerfectOnly()))
	assert.Equal(t, "Score 70% or more to earn the badge", ruleText(reward.Threshold(0.7)))
	assert.Equal(t, "Finish to earn the badge", ruleText(reward.AnyCompletion()))
}

func TestNotifierWithoutProgram(t *testing.T) {
	n := NewNotifier()
	assert.NotPanics(t, func() { n.SessionChanged(engine.Snapshot{}) })
}

func TestSettleIgnoresStaleGame(t *testing.T) {
	h := newHarness(t)
	h.press("j")
	h.press("enter")

	h.send(settledMsg{completion: engine.Completion{GameID: "stranger-chat"}})
	assert.Equal(t, ViewPlaying, h.m.view)

	_, err := h.eng.Settle(context.Background())
	assert.ErrorIs(t, err, engine.ErrInProgress)
}

func TestAnswerForAdvancedQuestionIsDropped(t *testing.T) {
	h := newHarness(t)
	h.press("j")
	h.press("enter")

	h.press("1")
	require.True(t, h.eng.Session().Snapshot().Answered)

	// The engine moves on before the model hears about it.
	h.clk.fire()
	moved := h.eng.Session().Snapshot()
	require.Equal(t, 1, moved.Index)
	require.False(t, moved.Answered)
	assert.Equal(t, 0, h.m.shownIndex)

	h.press("1")
	assert.Equal(t, moved, h.eng.Session().Snapshot())

	h.send(SessionChangedMsg{Snapshot: moved})
	assert.Equal(t, 1, h.m.shownIndex)
	h.press("1")
	assert.True(t, h.eng.Session().Snapshot().Answered)
}

func TestOnlyLatestTickChainSurvives(t *testing.T) {
	h := newHarness(t)
	h.press("j")
	h.press("enter")
	first := h.m.tickGen

	h.press("esc")
	h.press("enter")
	require.Equal(t, ViewPlaying, h.m.view)
	require.NotEqual(t, first, h.m.tickGen)

	_, cmd := h.m.Update(tickMsg{gen: first})
	assert.Nil(t, cmd, "a stale tick must not reschedule itself")

	_, cmd = h.m.Update(tickMsg{gen: h.m.tickGen})
	assert.NotNil(t, cmd)
}
