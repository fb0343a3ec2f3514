package game

import (
	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/scenario"
)

// StrangerChat is a stop-or-continue game about messages from strangers.
type StrangerChat struct {
	BaseGame
}

// NewStrangerChat creates a new StrangerChat game.
func NewStrangerChat() *StrangerChat {
	stop := func(id, prompt, why string, shouldStop bool) scenario.Scenario {
		return scenario.Scenario{
			ID:          id,
			Kind:        scenario.KindBinary,
			Prompt:      prompt,
			Truth:       scenario.Bool(shouldStop),
			YesLabel:    "Stop & tell a grown-up",
			NoLabel:     "Keep chatting",
			Explanation: why,
		}
	}
	return &StrangerChat{
		BaseGame: BaseGame{Set: []scenario.Scenario{
			stop("chat-address", "A player you just met asks where you live.", "Your address is private information.", true),
			stop("chat-gg", "Your teammate says \"good game!\" after a match.", "Friendly game chat is fine.", false),
			stop("chat-secret", "Someone says: \"Let's keep our chats a secret from your parents.\"", "Secrets from your grown-ups are a red flag.", true),
			stop("chat-photo", "A stranger asks you to send a photo of yourself.", "Never send photos to people you don't know.", true),
			stop("chat-tip", "A player explains how to beat the next level.", "Game tips are safe to talk about.", false),
		}},
	}
}

// GetMetadata returns the game's metadata.
func (g *StrangerChat) GetMetadata() Metadata {
	return Metadata{
		ID:          "stranger-chat",
		Name:        "Stranger Chat",
		Description: "Decide when a chat needs to stop.",
		Difficulty:  DifficultyEasy,
		Category:    CategoryOnlineSafety,
		Policy:      reward.PerfectOnly(),
		Coins:       40,
	}
}
