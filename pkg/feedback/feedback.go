// Package feedback carries the transient per-answer signal (flash, confetti)
// out of a session. Emitting is fire-and-forget: nothing an emitter does can
// change scoring or advancement.
package feedback

import (
	"k8s.io/klog/v2"
)

// Signal describes one judged answer.
type Signal struct {
	GameID     string
	ScenarioID string
	Index      int
	Points     int
	Positive   bool
	TimedOut   bool
}

// Emitter receives one Signal per accepted answer.
type Emitter interface {
	Emit(Signal)
}

// Func adapts a function to Emitter.
type Func func(Signal)

// Emit calls f.
func (f Func) Emit(s Signal) {
	if f != nil {
		f(s)
	}
}

// Nop discards every signal.
type Nop struct{}

// Emit does nothing.
func (Nop) Emit(Signal) {}

// Multi fans a signal out to several emitters. A panicking emitter is logged
// and does not prevent the others from running.
type Multi []Emitter

// Emit forwards s to every emitter in order.
func (m Multi) Emit(s Signal) {
	for _, e := range m {
		Safe(e, s)
	}
}

// Safe emits s on e, absorbing a nil emitter or a panic.
func Safe(e Emitter, s Signal) {
	if e == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			klog.ErrorS(nil, "Feedback emitter panicked", "game", s.GameID, "scenario", s.ScenarioID, "panic", r)
		}
	}()
	e.Emit(s)
}

// Logger writes signals to the structured log at the given verbosity.
type Logger struct {
	Verbosity klog.Level
}

// Emit logs s.
func (l Logger) Emit(s Signal) {
	klog.V(l.Verbosity).InfoS("Answer feedback",
		"game", s.GameID,
		"scenario", s.ScenarioID,
		"index", s.Index,
		"points", s.Points,
		"positive", s.Positive,
		"timedOut", s.TimedOut,
	)
}
