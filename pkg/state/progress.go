package state

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Play is one finished session.
type Play struct {
	ID       uuid.UUID     `json:"id"`
	GameID   string        `json:"game_id"`
	Score    int           `json:"score"`
	Total    int           `json:"total"`
	Percent  int           `json:"percent"`
	Coins    int           `json:"coins"`
	Earned   bool          `json:"earned"`
	Elapsed  time.Duration `json:"elapsed"`
	PlayedAt time.Time     `json:"played_at"`
}

// Progress is the player's accumulated record.
type Progress struct {
	CompletedGames map[string]bool `json:"completed_games"`
	Coins          int             `json:"coins"`
	// BestScores holds the best percentage per game.
	BestScores     map[string]int `json:"best_scores"`
	LastActiveGame string         `json:"last_active_game,omitempty"`
	Plays          int            `json:"plays"`
}

// Recorder receives finished plays and reports accumulated progress.
type Recorder interface {
	RecordPlay(ctx context.Context, p Play) error
	Progress(ctx context.Context) (*Progress, error)
}

func newProgress() *Progress {
	return &Progress{
		CompletedGames: make(map[string]bool),
		BestScores:     make(map[string]int),
	}
}

// apply folds p into pr. Coins are granted the first time a game is earned.
func (pr *Progress) apply(p Play) {
	pr.Plays++
	pr.LastActiveGame = p.GameID
	if best, ok := pr.BestScores[p.GameID]; !ok || p.Percent > best {
		pr.BestScores[p.GameID] = p.Percent
	}
	if p.Earned && !pr.CompletedGames[p.GameID] {
		pr.CompletedGames[p.GameID] = true
		pr.Coins += p.Coins
	}
}

// prepare fills in the play's identity and timestamp when missing.
func prepare(p Play) Play {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PlayedAt.IsZero() {
		p.PlayedAt = time.Now().UTC()
	}
	return p
}
