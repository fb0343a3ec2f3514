package game

import (
	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/scenario"
)

// ConsentCheck asks whether posting something needs someone's permission.
type ConsentCheck struct {
	BaseGame
}

// NewConsentCheck creates a new ConsentCheck game.
func NewConsentCheck() *ConsentCheck {
	ask := func(id, text string, needsConsent bool) scenario.Scenario {
		return scenario.Scenario{
			ID:       id,
			Kind:     scenario.KindBinary,
			Prompt:   text,
			Truth:    scenario.Bool(needsConsent),
			YesLabel: "Ask first",
			NoLabel:  "Fine to post",
		}
	}
	return &ConsentCheck{
		BaseGame: BaseGame{Set: []scenario.Scenario{
			ask("cc-friend-photo", "A funny photo of your friend mid-sneeze", true),
			ask("cc-sunset", "A photo of a sunset you took", false),
			ask("cc-group", "A group picture from the class trip", true),
			ask("cc-sister-video", "A video of your little sister dancing", true),
		}},
	}
}

// GetMetadata returns the game's metadata.
func (g *ConsentCheck) GetMetadata() Metadata {
	return Metadata{
		ID:          "consent-check",
		Name:        "Consent Check",
		Description: "Learn when to ask before you post.",
		Difficulty:  DifficultyEasy,
		Category:    CategoryDigitalFootprint,
		Policy:      reward.PerfectOnly(),
		Coins:       35,
	}
}
