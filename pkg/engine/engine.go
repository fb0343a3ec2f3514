// Package engine runs mini-game sessions and chains games within a category.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"citizen-dojo/pkg/feedback"
	"citizen-dojo/pkg/game"
	"citizen-dojo/pkg/registry"
	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/scenario"
	"citizen-dojo/pkg/state"
)

// State represents the current state of the engine.
type State string

const (
	StateIdle      State = "idle"
	StatePlaying   State = "playing"
	StateCompleted State = "completed"
)

var (
	// ErrGameNotFound is returned when starting an unknown game.
	ErrGameNotFound = errors.New("game not found")
	// ErrNoSession is returned when no game is running.
	ErrNoSession = errors.New("no game is running")
	// ErrInProgress is returned when settling a session that has not finished.
	ErrInProgress = errors.New("game is still in progress")
)

// Completion is the settled result of a finished game.
type Completion struct {
	GameID  string
	Score   int
	Total   int
	Outcome reward.Outcome
	// Next is the game "Next" leads to; zero when there is none.
	Next    registry.Target
	Elapsed time.Duration
}

// CanContinue reports whether "Next" should be offered.
func (c Completion) CanContinue() bool {
	return c.Outcome.UnlockNext && c.Next.Found()
}

// Option configures an Engine.
type Option func(*Engine)

// WithRecorder reports finished plays to r.
func WithRecorder(r state.Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithEmitter sends answer feedback to em, in addition to the log.
func WithEmitter(em feedback.Emitter) Option {
	return func(e *Engine) { e.emitter = em }
}

// WithClock replaces the real clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithFeedbackDelay sets how long input stays locked after an answer.
func WithFeedbackDelay(d time.Duration) Option {
	return func(e *Engine) { e.feedbackDelay = d }
}

// WithOnChange is called after timer-driven session transitions.
func WithOnChange(fn func(Snapshot)) Option {
	return func(e *Engine) { e.onChange = fn }
}

// WithResolver replaces the resolver built from the game registry.
func WithResolver(r *registry.Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// Engine manages the lifecycle of game sessions.
type Engine struct {
	registry      *game.Registry
	resolver      *registry.Resolver
	recorder      state.Recorder
	emitter       feedback.Emitter
	clock         Clock
	feedbackDelay time.Duration
	onChange      func(Snapshot)

	mu          sync.Mutex
	currentGame game.Game
	session     *Session
	nav         *registry.Target
	state       State
	startTime   time.Time
	completion  *Completion
}

// NewEngine creates a new game engine.
func NewEngine(reg *game.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry:      reg,
		emitter:       feedback.Nop{},
		clock:         clock.RealClock{},
		feedbackDelay: DefaultFeedbackDelay,
		state:         StateIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.resolver == nil {
		e.resolver = registry.NewResolver(reg.Catalog())
	}
	return e
}

// ListGames returns all available games.
func (e *Engine) ListGames() []game.Game {
	return e.registry.List()
}

// StartGame starts a game by its ID, replacing any running session. A non-nil
// nav overrides where "Next" leads once the game is over.
func (e *Engine) StartGame(ctx context.Context, id string, nav *registry.Target) error {
	g := e.registry.Get(id)
	if g == nil {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	meta := g.GetMetadata()

	// Malformed scenarios still play; they fail closed in the evaluator.
	if err := scenario.ValidateSet(g.Scenarios()); err != nil {
		klog.ErrorS(err, "Game has malformed scenarios", "game", meta.ID)
	}

	session, err := NewSession(g.Scenarios(), SessionOptions{
		GameID:         meta.ID,
		Policy:         meta.Policy,
		CoinsOnSuccess: meta.Coins,
		FeedbackDelay:  e.feedbackDelay,
		AnswerTimeout:  meta.AnswerTimeout,
		DisableRestart: meta.NoRetry,
		Clock:          e.clock,
		Emitter:        feedback.Multi{feedback.Logger{Verbosity: 4}, e.emitter},
		OnChange:       e.onChange,
	})
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", meta.ID, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.leaveLocked()
	e.currentGame = g
	e.session = session
	if nav != nil {
		override := *nav
		e.nav = &override
	}
	e.state = StatePlaying
	e.startTime = e.clock.Now()

	klog.InfoS("Game started", "game", meta.ID, "scenarios", len(g.Scenarios()), "policy", meta.Policy)
	return nil
}

// Session returns the running session, or nil.
func (e *Engine) Session() *Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Settle finalizes a finished game: it reports the play to the recorder once
// and resolves the next game. Calling it again returns the same Completion.
func (e *Engine) Settle(ctx context.Context) (Completion, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return Completion{}, ErrNoSession
	}
	if e.completion != nil {
		return *e.completion, nil
	}
	snap := e.session.Snapshot()
	if snap.Phase != PhaseCompleted || snap.Outcome == nil {
		return Completion{}, ErrInProgress
	}

	meta := e.currentGame.GetMetadata()
	c := Completion{
		GameID:  meta.ID,
		Score:   snap.Score,
		Total:   snap.Total,
		Outcome: *snap.Outcome,
		Next:    e.resolver.ResolveNext(string(meta.Category), meta.ID, e.nav),
		Elapsed: e.clock.Now().Sub(e.startTime),
	}
	// A catalog may name games this build does not have.
	if c.Next.Found() && e.registry.Get(c.Next.ID) == nil {
		klog.InfoS("Next game is not installed", "game", c.GameID, "next", c.Next.ID, "path", c.Next.Path)
		c.Next = registry.Target{}
	}
	e.completion = &c
	e.state = StateCompleted

	if e.recorder != nil {
		err := e.recorder.RecordPlay(ctx, state.Play{
			GameID:  c.GameID,
			Score:   c.Score,
			Total:   c.Total,
			Percent: c.Outcome.Percent,
			Coins:   c.Outcome.Coins,
			Earned:  c.Outcome.Earned,
			Elapsed: c.Elapsed,
		})
		if err != nil {
			klog.ErrorS(err, "Failed to record play", "game", c.GameID)
		}
	}

	klog.InfoS("Game settled", "game", c.GameID, "score", c.Score, "total", c.Total,
		"earned", c.Outcome.Earned, "next", c.Next.ID)
	return c, nil
}

// Next starts the game the settled completion leads to.
func (e *Engine) Next(ctx context.Context) error {
	e.mu.Lock()
	c := e.completion
	e.mu.Unlock()

	if c == nil {
		return ErrNoSession
	}
	if !c.CanContinue() {
		return fmt.Errorf("%w: no next game after %s", ErrGameNotFound, c.GameID)
	}
	return e.StartGame(ctx, c.Next.ID, nil)
}

// Restart replays the current game from its first scenario.
func (e *Engine) Restart() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || !e.session.Restart() {
		return false
	}
	e.completion = nil
	e.state = StatePlaying
	e.startTime = e.clock.Now()
	return true
}

// Leave abandons the current game and cancels its pending timers.
func (e *Engine) Leave() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.leaveLocked()
}

func (e *Engine) leaveLocked() {
	if e.session != nil {
		e.session.Close()
		klog.V(2).InfoS("Left game", "game", e.session.opts.GameID)
	}
	e.currentGame = nil
	e.session = nil
	e.nav = nil
	e.completion = nil
	e.state = StateIdle
	e.startTime = time.Time{}
}

// GetState returns the current state.
func (e *Engine) GetState() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StatePlaying && e.session.Snapshot().Phase == PhaseCompleted {
		return StateCompleted
	}
	return e.state
}

// GetCurrentGame returns the currently running game.
func (e *Engine) GetCurrentGame() game.Game {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentGame
}

// GetElapsedTime returns how long the current game has been running. It stops
// counting once the game is settled.
func (e *Engine) GetElapsedTime() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateIdle || e.startTime.IsZero() {
		return 0
	}
	if e.completion != nil {
		return e.completion.Elapsed
	}
	return e.clock.Now().Sub(e.startTime)
}

// Progress returns the recorder's accumulated progress.
func (e *Engine) Progress(ctx context.Context) (*state.Progress, error) {
	if e.recorder == nil {
		return nil, errors.New("no progress recorder configured")
	}
	return e.recorder.Progress(ctx)
}
