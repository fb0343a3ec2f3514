package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// historyLimit caps the plays kept in the state file.
const historyLimit = 50

// State represents the persistent application state.
type State struct {
	Progress
	History []Play `json:"history,omitempty"`
}

// Manager handles saving and loading of application state.
type Manager struct {
	path string
	mu   sync.RWMutex
}

// NewManager creates a new state manager.
// If path is empty, it defaults to ~/.citizen-dojo/state.json
func NewManager(path string) (*Manager, error) {
	if path == "" {
		p, err := DefaultPath("state.json")
		if err != nil {
			return nil, err
		}
		path = p
	}

	return &Manager{
		path: path,
	}, nil
}

// DefaultPath returns name inside ~/.citizen-dojo.
func DefaultPath(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".citizen-dojo", name), nil
}

// Load loads the state from disk.
// If the file doesn't exist, it returns an empty state.
func (m *Manager) Load() (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadLocked()
}

func (m *Manager) loadLocked() (*State, error) {
	state := &State{Progress: *newProgress()}

	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	if state.CompletedGames == nil {
		state.CompletedGames = make(map[string]bool)
	}
	if state.BestScores == nil {
		state.BestScores = make(map[string]int)
	}

	return state, nil
}

// Save persists the state to disk.
func (m *Manager) Save(state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked(state)
}

func (m *Manager) saveLocked(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// update loads, mutates and saves the state under one write lock.
func (m *Manager) update(fn func(*State)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.loadLocked()
	if err != nil {
		return err
	}
	fn(state)
	return m.saveLocked(state)
}

// RecordPlay implements Recorder.
func (m *Manager) RecordPlay(_ context.Context, p Play) error {
	p = prepare(p)
	return m.update(func(s *State) {
		s.apply(p)
		s.History = append(s.History, p)
		if over := len(s.History) - historyLimit; over > 0 {
			s.History = append([]Play(nil), s.History[over:]...)
		}
	})
}

// Progress implements Recorder.
func (m *Manager) Progress(_ context.Context) (*Progress, error) {
	state, err := m.Load()
	if err != nil {
		return nil, err
	}
	return &state.Progress, nil
}
