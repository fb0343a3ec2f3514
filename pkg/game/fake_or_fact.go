package game

import (
	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/scenario"
)

// FakeOrFact asks whether a post is fake.
type FakeOrFact struct {
	BaseGame
}

// NewFakeOrFact creates a new FakeOrFact game.
func NewFakeOrFact() *FakeOrFact {
	post := func(id, text string, isFake bool, why string) scenario.Scenario {
		return scenario.Scenario{
			ID:          id,
			Kind:        scenario.KindBinary,
			Prompt:      text,
			Truth:       scenario.Bool(isFake),
			YesLabel:    "Fake",
			NoLabel:     "Fact",
			Explanation: why,
		}
	}
	return &FakeOrFact{
		BaseGame: BaseGame{Set: []scenario.Scenario{
			post("ff-shark", "A photo shows a shark swimming down a city highway.", true, "Edited photos like this spread after every storm."),
			post("ff-moon", "Astronauts first walked on the Moon in 1969.", false, "Many trusted sources agree."),
			post("ff-chocolate", "\"Scientists say kids who eat chocolate never get sick!\" (no source)", true, "Big claims with no source are a warning sign."),
			post("ff-octopus", "An octopus has three hearts.", false, "Surprising, but true."),
			post("ff-school", "\"School is cancelled forever!\" shared by an account made yesterday.", true, "Brand-new accounts and shocking news go together too often."),
		}},
	}
}

// GetMetadata returns the game's metadata.
func (g *FakeOrFact) GetMetadata() Metadata {
	return Metadata{
		ID:          "fake-or-fact",
		Name:        "Fake or Fact?",
		Description: "Spot the posts that are trying to trick you.",
		Difficulty:  DifficultyMedium,
		Category:    CategoryMediaLiteracy,
		Policy:      reward.Threshold(0.80),
		Coins:       50,
	}
}
