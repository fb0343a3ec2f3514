package game

import (
	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/scenario"
)

// KindnessPledge is a reflection task: every answer is a step of the pledge
// and finishing earns the badge.
type KindnessPledge struct {
	BaseGame
}

// NewKindnessPledge creates a new KindnessPledge game.
func NewKindnessPledge() *KindnessPledge {
	return &KindnessPledge{
		BaseGame: BaseGame{Set: []scenario.Scenario{
			{
				ID:     "kp-mean-comment",
				Kind:   scenario.KindSingleChoice,
				Prompt: "You see a mean comment under a classmate's video. What's your move?",
				Options: []scenario.Option{
					correct("a", "Report it and send the classmate something kind"),
					option("b", "Reply with an even meaner comment"),
					option("c", "Scroll past"),
				},
			},
			{
				ID:     "kp-left-out",
				Kind:   scenario.KindSingleChoice,
				Prompt: "Someone is left out of the group chat. What could you do?",
				Options: []scenario.Option{
					correct("a", "Invite them in"),
					option("b", "Make a second chat without them"),
				},
			},
			{
				ID:     "kp-pause",
				Kind:   scenario.KindSingleChoice,
				Prompt: "You're angry and about to post. What helps?",
				Options: []scenario.Option{
					option("a", "Post fast before you change your mind"),
					correct("b", "Take a break and come back later"),
				},
			},
		}},
	}
}

// GetMetadata returns the game's metadata.
func (g *KindnessPledge) GetMetadata() Metadata {
	return Metadata{
		ID:          "kindness-pledge",
		Name:        "Kindness Pledge",
		Description: "Walk through the pledge and earn your Upstander badge.",
		Difficulty:  DifficultyEasy,
		Category:    CategoryDigitalFootprint,
		Policy:      reward.AnyCompletion(),
		Coins:       20,
		NoRetry:     true,
	}
}
