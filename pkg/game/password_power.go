package game

import (
	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/scenario"
)

// PasswordPower asks the player to pick the strongest password.
type PasswordPower struct {
	BaseGame
}

// NewPasswordPower creates a new PasswordPower game.
func NewPasswordPower() *PasswordPower {
	return &PasswordPower{
		BaseGame: BaseGame{Set: []scenario.Scenario{
			{
				ID:     "pw-pet",
				Kind:   scenario.KindSingleChoice,
				Prompt: "Which password is the hardest to guess?",
				Options: []scenario.Option{
					option("a", "fluffy"),
					correct("b", "Fluffy-Eats-7-Tacos!"),
					option("c", "fluffy123"),
				},
				Explanation: "Long passphrases mixing words, numbers and symbols are the strongest.",
			},
			{
				ID:     "pw-birthday",
				Kind:   scenario.KindSingleChoice,
				Prompt: "Maya wants to use her birthday as her password. What should she do?",
				Options: []scenario.Option{
					option("a", "Use it, nobody knows her birthday"),
					correct("b", "Pick something that isn't about her"),
					option("c", "Add her name to the front"),
				},
				Explanation: "Birthdays and names are easy to find online.",
			},
			{
				ID:     "pw-share",
				Kind:   scenario.KindSingleChoice,
				Prompt: "Your best friend asks for your game password. What do you do?",
				Options: []scenario.Option{
					correct("a", "Keep it secret, even from friends"),
					option("b", "Share it, they're your best friend"),
					option("c", "Give them half of it"),
				},
				Explanation: "Passwords are only shared with a trusted grown-up.",
			},
			{
				ID:     "pw-reuse",
				Kind:   scenario.KindSingleChoice,
				Prompt: "Is it okay to use the same password for every app?",
				Options: []scenario.Option{
					option("a", "Yes, it's easier to remember"),
					correct("b", "No, one leak would unlock everything"),
				},
				Explanation: "Different passwords keep one leak from spreading.",
			},
			{
				ID:     "pw-manager",
				Kind:   scenario.KindSingleChoice,
				Prompt: "Where is a safe place to keep track of your passwords?",
				Options: []scenario.Option{
					option("a", "A sticky note on the screen"),
					option("b", "A message to a friend"),
					correct("c", "A password manager set up with a grown-up"),
				},
				Explanation: "Password managers lock your passwords behind one strong key.",
			},
		}},
	}
}

// GetMetadata returns the game's metadata.
func (g *PasswordPower) GetMetadata() Metadata {
	return Metadata{
		ID:          "password-power",
		Name:        "Password Power",
		Description: "Build passwords that keep sneaky guessers out.",
		Difficulty:  DifficultyEasy,
		Category:    CategoryOnlineSafety,
		Policy:      reward.Threshold(0.70),
		Coins:       50,
	}
}
