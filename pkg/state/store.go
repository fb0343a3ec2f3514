package state

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Store is a Recorder backed by SQLite. It keeps every play.
type Store struct {
	db *sql.DB
}

// OpenStore opens/creates a SQLite database at path and runs migrations.
func OpenStore(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open progress db: %w", err)
	}
	db.SetMaxOpenConns(1)
	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate progress db: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS plays (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			percent INTEGER NOT NULL,
			coins INTEGER NOT NULL,
			earned INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			played_at TIMESTAMP NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_plays_game ON plays(game_id, percent DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_plays_played_at ON plays(played_at DESC);`,

		// First earned play per game; coins are granted once.
		`CREATE TABLE IF NOT EXISTS completions (
			game_id TEXT PRIMARY KEY,
			play_id TEXT NOT NULL,
			coins INTEGER NOT NULL,
			completed_at TIMESTAMP NOT NULL
		);`,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, q := range stmts {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// RecordPlay implements Recorder.
func (s *Store) RecordPlay(ctx context.Context, p Play) error {
	p = prepare(p)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO plays (id, game_id, score, total, percent, coins, earned, elapsed_ms, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.GameID, p.Score, p.Total, p.Percent, p.Coins, p.Earned,
		p.Elapsed.Milliseconds(), p.PlayedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert play: %w", err)
	}

	if p.Earned {
		_, err = tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO completions (game_id, play_id, coins, completed_at)
			VALUES (?, ?, ?, ?)`,
			p.GameID, p.ID.String(), p.Coins, p.PlayedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to record completion: %w", err)
		}
	}

	return tx.Commit()
}

// Progress implements Recorder.
func (s *Store) Progress(ctx context.Context) (*Progress, error) {
	pr := newProgress()

	rows, err := s.db.QueryContext(ctx, `SELECT game_id, coins FROM completions`)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	for rows.Next() {
		var id string
		var coins int
		if err := rows.Scan(&id, &coins); err != nil {
			rows.Close()
			return nil, err
		}
		pr.CompletedGames[id] = true
		pr.Coins += coins
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT game_id, MAX(percent) FROM plays GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query best scores: %w", err)
	}
	for rows.Next() {
		var id string
		var best int
		if err := rows.Scan(&id, &best); err != nil {
			rows.Close()
			return nil, err
		}
		pr.BestScores[id] = best
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plays`).Scan(&pr.Plays); err != nil {
		return nil, fmt.Errorf("failed to count plays: %w", err)
	}
	err = s.db.QueryRowContext(ctx,
		`SELECT game_id FROM plays ORDER BY played_at DESC, rowid DESC LIMIT 1`).Scan(&pr.LastActiveGame)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to query last game: %w", err)
	}

	return pr, nil
}

// Plays returns up to limit plays of gameID, newest first. An empty gameID
// lists all games.
func (s *Store) Plays(ctx context.Context, gameID string, limit int) ([]Play, error) {
	if limit <= 0 {
		limit = historyLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, game_id, score, total, percent, coins, earned, elapsed_ms, played_at
		FROM plays
		WHERE (? = '' OR game_id = ?)
		ORDER BY played_at DESC, rowid DESC
		LIMIT ?`, gameID, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query plays: %w", err)
	}
	defer rows.Close()

	var out []Play
	for rows.Next() {
		var (
			p         Play
			id        string
			elapsedMS int64
		)
		if err := rows.Scan(&id, &p.GameID, &p.Score, &p.Total, &p.Percent, &p.Coins,
			&p.Earned, &elapsedMS, &p.PlayedAt); err != nil {
			return nil, err
		}
		if p.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("bad play id %q: %w", id, err)
		}
		p.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		out = append(out, p)
	}
	return out, rows.Err()
}
