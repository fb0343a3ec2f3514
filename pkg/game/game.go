// Package game defines the mini-games of the catalog.
package game

import (
	"time"

	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/scenario"
)

// Difficulty represents the difficulty level of a game.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Metadata contains descriptive information and reward settings for a game.
type Metadata struct {
	ID          string
	Name        string
	Description string
	Difficulty  Difficulty
	Category    Category

	Policy reward.Policy
	Coins  int // granted when the policy is satisfied

	// AnswerTimeout > 0 makes the game a reflex game.
	AnswerTimeout time.Duration
	// NoRetry hides "Try Again" once the game is over.
	NoRetry bool
}

// Game defines the interface that all mini-games must implement.
type Game interface {
	// GetMetadata returns the game's metadata.
	GetMetadata() Metadata

	// Scenarios returns the game's scenario set in play order.
	Scenarios() []scenario.Scenario
}

// BaseGame provides common functionality for games.
type BaseGame struct {
	Set []scenario.Scenario
}

// Scenarios returns a copy of the scenario set.
func (b *BaseGame) Scenarios() []scenario.Scenario {
	return append([]scenario.Scenario(nil), b.Set...)
}

func option(id, label string) scenario.Option {
	return scenario.Option{ID: id, Label: label}
}

func correct(id, label string) scenario.Option {
	return scenario.Option{ID: id, Label: label, Correct: true}
}
