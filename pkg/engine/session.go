package engine

import (
	"errors"
	"sync"
	"time"

	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"citizen-dojo/pkg/evaluate"
	"citizen-dojo/pkg/feedback"
	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/scenario"
)

// DefaultFeedbackDelay is how long input stays locked after an answer.
const DefaultFeedbackDelay = 800 * time.Millisecond

// ErrNoScenarios is returned when a session is created without scenarios.
var ErrNoScenarios = errors.New("session needs at least one scenario")

// Phase is the coarse state of a session.
type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseCompleted  Phase = "completed"
)

// Clock schedules delayed transitions. clock.RealClock satisfies it.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) clock.Timer
}

// SessionOptions parameterizes a session for one game.
type SessionOptions struct {
	GameID         string
	Policy         reward.Policy
	CoinsOnSuccess int

	// FeedbackDelay defaults to DefaultFeedbackDelay when zero.
	FeedbackDelay time.Duration
	// AnswerTimeout > 0 turns on the reflex countdown: a scenario left
	// unanswered this long is judged Incorrect.
	AnswerTimeout time.Duration
	// DisableRestart makes Completed final.
	DisableRestart bool

	Clock   Clock
	Emitter feedback.Emitter
	// OnChange runs after timer-driven transitions (advance, timeout), outside
	// the session lock.
	OnChange func(Snapshot)
}

// AnswerRecord is the last judged answer, for highlighting.
type AnswerRecord struct {
	ScenarioID string
	Choice     scenario.Choice
	Verdict    evaluate.Verdict
	TimedOut   bool
}

// Snapshot is a consistent copy of session state.
type Snapshot struct {
	GameID   string
	Phase    Phase
	Index    int
	Total    int
	Score    int
	Answered bool
	Last     *AnswerRecord
	Outcome  *reward.Outcome
	// Deadline is when the reflex countdown expires; zero when none is armed.
	Deadline time.Time
}

// Session drives one playthrough of a scenario set.
//
// At most one timer is outstanding per session. Every scheduled callback
// carries the token current at scheduling time and is ignored once the
// token has moved on, so a cancelled or superseded timer can never advance
// the session.
type Session struct {
	mu        sync.Mutex
	opts      SessionOptions
	scenarios []scenario.Scenario

	index    int
	answered bool
	score    int
	point    int // awarded for the current answer, credited on advance
	phase    Phase
	last     *AnswerRecord
	outcome  *reward.Outcome
	deadline time.Time

	pending clock.Timer
	token   uint64
	closed  bool
}

// NewSession starts a session at the first scenario.
func NewSession(scenarios []scenario.Scenario, opts SessionOptions) (*Session, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	if opts.FeedbackDelay <= 0 {
		opts.FeedbackDelay = DefaultFeedbackDelay
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Emitter == nil {
		opts.Emitter = feedback.Nop{}
	}

	s := &Session{
		opts:      opts,
		scenarios: append([]scenario.Scenario(nil), scenarios...),
		phase:     PhaseInProgress,
	}

	s.mu.Lock()
	s.armCountdownLocked()
	s.mu.Unlock()

	return s, nil
}

// Submit answers the current scenario. It returns ok=false and leaves state
// untouched when input is locked: while feedback is showing, after
// completion, or after Close.
func (s *Session) Submit(choice scenario.Choice) (verdict evaluate.Verdict, ok bool) {
	s.mu.Lock()
	if !s.acceptingLocked() {
		s.mu.Unlock()
		return "", false
	}
	return s.acceptLocked(choice, false), true
}

// SubmitAt is Submit for the scenario at index. It is rejected when the
// session has already moved past index, so a late answer is never scored
// against the following scenario.
func (s *Session) SubmitAt(index int, choice scenario.Choice) (verdict evaluate.Verdict, ok bool) {
	s.mu.Lock()
	if !s.acceptingLocked() || s.index != index {
		s.mu.Unlock()
		return "", false
	}
	return s.acceptLocked(choice, false), true
}

// Restart resets a completed session to its first scenario, keeping the
// scenario order.
func (s *Session) Restart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.phase != PhaseCompleted || s.opts.DisableRestart {
		return false
	}
	s.cancelLocked()
	s.index = 0
	s.score = 0
	s.point = 0
	s.answered = false
	s.phase = PhaseInProgress
	s.last = nil
	s.outcome = nil
	s.armCountdownLocked()

	klog.V(2).InfoS("Session restarted", "game", s.opts.GameID)
	return true
}

// Close cancels any pending timer. A closed session ignores all input.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.cancelLocked()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Current returns the scenario awaiting or showing an answer.
func (s *Session) Current() (scenario.Scenario, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInProgress {
		return scenario.Scenario{}, false
	}
	return s.scenarios[s.index], true
}

// Scenarios returns the session's scenario set in play order.
func (s *Session) Scenarios() []scenario.Scenario {
	return append([]scenario.Scenario(nil), s.scenarios...)
}

// Outcome returns the reward decided on completion.
func (s *Session) Outcome() (reward.Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome == nil {
		return reward.Outcome{}, false
	}
	return *s.outcome, true
}

func (s *Session) acceptingLocked() bool {
	return !s.closed && s.phase == PhaseInProgress && !s.answered
}

// acceptLocked judges choice, emits feedback and schedules the advance.
// Called with s.mu held; returns with it released.
func (s *Session) acceptLocked(choice scenario.Choice, timedOut bool) evaluate.Verdict {
	s.cancelLocked()

	current := s.scenarios[s.index]
	verdict := evaluate.Evaluate(current, choice)

	s.point = 0
	if verdict.IsCorrect() {
		s.point = 1
	}
	s.answered = true
	s.last = &AnswerRecord{
		ScenarioID: current.ID,
		Choice:     choice,
		Verdict:    verdict,
		TimedOut:   timedOut,
	}
	signal := feedback.Signal{
		GameID:     s.opts.GameID,
		ScenarioID: current.ID,
		Index:      s.index,
		Points:     s.point,
		Positive:   verdict.IsCorrect(),
		TimedOut:   timedOut,
	}
	token := s.token
	s.mu.Unlock()

	// Feedback goes out before the advance can be scheduled.
	feedback.Safe(s.opts.Emitter, signal)

	s.mu.Lock()
	if token == s.token && !s.closed {
		s.scheduleLocked(s.opts.FeedbackDelay, s.advance)
	}
	s.mu.Unlock()

	return verdict
}

func (s *Session) advance(token uint64) {
	s.mu.Lock()
	if token != s.token || s.closed || s.phase != PhaseInProgress || !s.answered {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	s.score += s.point
	s.point = 0
	s.answered = false

	if s.index+1 < len(s.scenarios) {
		s.index++
		s.armCountdownLocked()
	} else {
		s.index = len(s.scenarios)
		s.phase = PhaseCompleted
		out := s.opts.Policy.Decide(s.score, len(s.scenarios), s.opts.CoinsOnSuccess)
		s.outcome = &out
		klog.V(1).InfoS("Session completed",
			"game", s.opts.GameID, "score", s.score, "total", len(s.scenarios),
			"percent", out.Percent, "earned", out.Earned, "coins", out.Coins)
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

func (s *Session) timeout(token uint64) {
	s.mu.Lock()
	if token != s.token || !s.acceptingLocked() {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	klog.V(2).InfoS("Answer timed out", "game", s.opts.GameID, "index", s.index)
	s.acceptLocked(scenario.Choice{}, true)

	s.notify(s.Snapshot())
}

// armCountdownLocked starts the reflex countdown for the current scenario.
func (s *Session) armCountdownLocked() {
	if s.opts.AnswerTimeout <= 0 {
		return
	}
	s.scheduleLocked(s.opts.AnswerTimeout, s.timeout)
	s.deadline = s.opts.Clock.Now().Add(s.opts.AnswerTimeout)
}

// scheduleLocked replaces any pending timer with fn after d.
func (s *Session) scheduleLocked(d time.Duration, fn func(token uint64)) {
	s.cancelLocked()
	token := s.token
	s.pending = s.opts.Clock.AfterFunc(d, func() { fn(token) })
}

// cancelLocked stops the pending timer and invalidates its token.
func (s *Session) cancelLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.token++
	s.deadline = time.Time{}
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		GameID:   s.opts.GameID,
		Phase:    s.phase,
		Index:    s.index,
		Total:    len(s.scenarios),
		Score:    s.score,
		Answered: s.answered,
		Deadline: s.deadline,
	}
	if s.last != nil {
		last := *s.last
		snap.Last = &last
	}
	if s.outcome != nil {
		out := *s.outcome
		snap.Outcome = &out
	}
	return snap
}

func (s *Session) notify(snap Snapshot) {
	if s.opts.OnChange != nil {
		s.opts.OnChange(snap)
	}
}
