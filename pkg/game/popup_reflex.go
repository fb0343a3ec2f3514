package game

import (
	"time"

	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/scenario"
)

// PopupReflex flashes pop-ups the player must judge before time runs out.
type PopupReflex struct {
	BaseGame
}

// NewPopupReflex creates a new PopupReflex game.
func NewPopupReflex() *PopupReflex {
	popup := func(id, text string, safe bool) scenario.Scenario {
		return scenario.Scenario{
			ID:       id,
			Kind:     scenario.KindBinary,
			Prompt:   text,
			Truth:    scenario.Bool(safe),
			YesLabel: "Safe to click",
			NoLabel:  "Close it",
		}
	}
	return &PopupReflex{
		BaseGame: BaseGame{Set: []scenario.Scenario{
			popup("pop-prize", "YOU WON A FREE TABLET!!! Click now!", false),
			popup("pop-update", "Your teacher's class site: \"New homework posted\"", true),
			popup("pop-virus", "WARNING: 37 viruses found! Download cleaner!", false),
			popup("pop-skins", "Free game coins, just enter your password", false),
			popup("pop-library", "Library app: \"Your book is due tomorrow\"", true),
		}},
	}
}

// GetMetadata returns the game's metadata.
func (g *PopupReflex) GetMetadata() Metadata {
	return Metadata{
		ID:            "popup-reflex",
		Name:          "Pop-Up Reflex",
		Description:   "Close the tricky pop-ups before the timer runs out.",
		Difficulty:    DifficultyMedium,
		Category:      CategoryOnlineSafety,
		Policy:        reward.Threshold(0.80),
		Coins:         60,
		AnswerTimeout: 4 * time.Second,
	}
}
