package game

import (
	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/scenario"
)

var shareCategories = []string{"Okay to share", "Keep private", "Ask a grown-up"}

// ShareOrNot sorts pieces of information by who may see them.
type ShareOrNot struct {
	BaseGame
}

// NewShareOrNot creates a new ShareOrNot game.
func NewShareOrNot() *ShareOrNot {
	info := func(id, text, category string) scenario.Scenario {
		return scenario.Scenario{
			ID:              id,
			Kind:            scenario.KindCategory,
			Prompt:          text,
			Categories:      shareCategories,
			CorrectCategory: category,
		}
	}
	return &ShareOrNot{
		BaseGame: BaseGame{Set: []scenario.Scenario{
			info("sn-color", "Your favorite color", "Okay to share"),
			info("sn-school", "The name of your school", "Keep private"),
			info("sn-drawing", "A drawing you made, for a class contest website", "Ask a grown-up"),
			info("sn-phone", "Your phone number", "Keep private"),
			info("sn-book", "The book you're reading", "Okay to share"),
			info("sn-vacation", "That your family is away on vacation right now", "Keep private"),
		}},
	}
}

// GetMetadata returns the game's metadata.
func (g *ShareOrNot) GetMetadata() Metadata {
	return Metadata{
		ID:          "share-or-not",
		Name:        "Share or Not?",
		Description: "Decide what belongs online and what stays with you.",
		Difficulty:  DifficultyEasy,
		Category:    CategoryDigitalFootprint,
		Policy:      reward.Threshold(0.70),
		Coins:       40,
	}
}
