package game

import (
	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/scenario"
)

var headlineCategories = []string{"News", "Opinion", "Ad"}

// HeadlineSorter sorts headlines into news, opinion and advertising.
type HeadlineSorter struct {
	BaseGame
}

// NewHeadlineSorter creates a new HeadlineSorter game.
func NewHeadlineSorter() *HeadlineSorter {
	headline := func(id, text, category string) scenario.Scenario {
		return scenario.Scenario{
			ID:              id,
			Kind:            scenario.KindCategory,
			Prompt:          text,
			Categories:      headlineCategories,
			CorrectCategory: category,
		}
	}
	return &HeadlineSorter{
		BaseGame: BaseGame{Set: []scenario.Scenario{
			headline("hl-bridge", "City opens new bike bridge on Saturday", "News"),
			headline("hl-pizza", "Pineapple is the best pizza topping, and here's why", "Opinion"),
			headline("hl-sneakers", "Get the sneakers EVERY kid wants, 20% off today only", "Ad"),
			headline("hl-rain", "Heavy rain expected across the region this week", "News"),
			headline("hl-homework", "Why homework should be banned on weekends", "Opinion"),
			headline("hl-app", "Download SuperFun now and unlock 100 free gems", "Ad"),
		}},
	}
}

// GetMetadata returns the game's metadata.
func (g *HeadlineSorter) GetMetadata() Metadata {
	return Metadata{
		ID:          "headline-sorter",
		Name:        "Headline Sorter",
		Description: "Is it news, somebody's opinion, or an ad?",
		Difficulty:  DifficultyMedium,
		Category:    CategoryMediaLiteracy,
		Policy:      reward.Threshold(0.70),
		Coins:       45,
	}
}
