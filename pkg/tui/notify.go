package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"citizen-dojo/pkg/engine"
)

// SessionChangedMsg is sent when a session timer advanced the game.
type SessionChangedMsg struct {
	Snapshot engine.Snapshot
}

// Notifier forwards engine callbacks into a running program. Messages sent
// before SetProgram are dropped; the model re-syncs on its next tick.
type Notifier struct {
	mu      sync.Mutex
	program *tea.Program
}

// NewNotifier creates a Notifier with no program attached.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// SetProgram attaches p.
func (n *Notifier) SetProgram(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = p
}

// SessionChanged is an engine.WithOnChange callback.
func (n *Notifier) SessionChanged(s engine.Snapshot) {
	n.mu.Lock()
	p := n.program
	n.mu.Unlock()

	if p != nil {
		// Send blocks until the event loop reads it; never block a timer.
		go p.Send(SessionChangedMsg{Snapshot: s})
	}
}
