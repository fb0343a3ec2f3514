package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"citizen-dojo/pkg/engine"
	"citizen-dojo/pkg/game"
	"citizen-dojo/pkg/scenario"
	"citizen-dojo/pkg/state"
)

func main() {
	gameID := flag.String("game", "password-power", "ID of the game to start from")
	correct := flag.Int("correct", -1, "answer this many questions right, then miss the rest (-1: all)")
	chain := flag.Bool("chain", false, "follow Next through the rest of the category")
	flag.Parse()

	fmt.Println("=== Citizen-Dojo Integration Test ===")
	fmt.Printf("Testing Game: %s\n\n", *gameID)

	// 1. Progress store in a scratch directory
	fmt.Println("1. Creating scratch progress store...")
	dir, err := os.MkdirTemp("", "citizen-dojo-it-")
	if err != nil {
		log.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	store, err := state.OpenStore(filepath.Join(dir, "progress.db"))
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()
	fmt.Println("   ✅ Store ready")

	// 2. Initialize Engine
	fmt.Println("2. Initializing game engine...")
	changed := make(chan engine.Snapshot, 16)
	reg := game.NewRegistry()
	eng := engine.NewEngine(reg,
		engine.WithRecorder(store),
		engine.WithFeedbackDelay(20*time.Millisecond),
		engine.WithOnChange(func(s engine.Snapshot) { changed <- s }),
	)
	defer eng.Leave()
	fmt.Printf("   ✅ Engine ready (%d games available)\n", reg.Count())

	if reg.Get(*gameID) == nil {
		log.Fatalf("Game %s not found", *gameID)
	}

	// 3. Play
	ctx := context.Background()
	if err := eng.StartGame(ctx, *gameID, nil); err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	for step := 3; ; step++ {
		meta := eng.GetCurrentGame().GetMetadata()
		fmt.Printf("%d. Playing '%s'...\n", step, meta.ID)

		c, err := play(ctx, eng, changed, *correct)
		if err != nil {
			log.Fatalf("Failed to play %s: %v", meta.ID, err)
		}
		fmt.Printf("   ✅ Score %d/%d (%d%%), earned=%t, coins=%d\n",
			c.Score, c.Total, c.Outcome.Percent, c.Outcome.Earned, c.Outcome.Coins)

		if !*chain || !c.CanContinue() {
			break
		}
		fmt.Printf("   ➡️  Next: %s\n", c.Next.ID)
		if err := eng.Next(ctx); err != nil {
			log.Fatalf("Failed to start next game: %v", err)
		}
	}

	// 4. Check what was recorded
	p, err := store.Progress(ctx)
	if err != nil {
		log.Fatalf("Failed to read progress: %v", err)
	}
	fmt.Printf("\nRecorded %d plays, %d coins, %d badges\n", p.Plays, p.Coins, len(p.CompletedGames))

	plays, err := store.Plays(ctx, "", 0)
	if err != nil {
		log.Fatalf("Failed to list plays: %v", err)
	}
	if len(plays) != p.Plays {
		log.Fatalf("Play history has %d rows, progress counts %d", len(plays), p.Plays)
	}
	for _, pl := range plays {
		fmt.Printf("   %s  %-18s %d/%d  earned=%t  coins=%d  %s\n",
			pl.ID.String()[:8], pl.GameID, pl.Score, pl.Total, pl.Earned, pl.Coins, pl.Elapsed.Round(time.Millisecond))
	}

	fmt.Println("\n=== All Tests Passed! ===")
}

// play answers every question of the running game and waits for each
// feedback delay to pass.
func play(ctx context.Context, eng *engine.Engine, changed <-chan engine.Snapshot, correct int) (engine.Completion, error) {
	s := eng.Session()
	for i := 0; ; i++ {
		current, ok := s.Current()
		if !ok {
			break
		}
		choice := scenario.Choice{}
		if correct < 0 || i < correct {
			choice, _ = current.Solution()
		}
		if _, ok := s.Submit(choice); !ok {
			return engine.Completion{}, fmt.Errorf("answer %d was rejected", i+1)
		}

		select {
		case <-changed:
		case <-time.After(5 * time.Second):
			return engine.Completion{}, fmt.Errorf("question %d never advanced", i+1)
		}
	}
	return eng.Settle(ctx)
}
