package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestHashCommandDeterministic(t *testing.T) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "dog",
		Description: "Get a random dog image",
	}

	assert.Equal(t, hashCommand(cmd), hashCommand(cmd))
}

func TestHashCommandChangesWithDefinition(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "dog", Description: "Get a random dog image"}
	b := &discordgo.ApplicationCommand{Name: "dog", Description: "Get a random cat image"}

	assert.NotEqual(t, hashCommand(a), hashCommand(b))
}

func TestHashCommandOptionOrderInsensitive(t *testing.T) {
	a := &discordgo.ApplicationCommand{
		Name: "info",
		Options: []*discordgo.ApplicationCommandOption{
			{Name: "user", Description: "User information", Type: discordgo.ApplicationCommandOptionSubCommand},
			{Name: "guild", Description: "Guild information", Type: discordgo.ApplicationCommandOptionSubCommand},
		},
	}
	b := &discordgo.ApplicationCommand{
		Name: "info",
		Options: []*discordgo.ApplicationCommandOption{
			{Name: "guild", Description: "Guild information", Type: discordgo.ApplicationCommandOptionSubCommand},
			{Name: "user", Description: "User information", Type: discordgo.ApplicationCommandOptionSubCommand},
		},
	}

	assert.Equal(t, hashCommand(a), hashCommand(b))
}

func TestHashCommandNestedOptions(t *testing.T) {
	flat := &discordgo.ApplicationCommand{
		Name: "info",
		Options: []*discordgo.ApplicationCommandOption{
			{Name: "user", Description: "User information", Type: discordgo.ApplicationCommandOptionSubCommand},
		},
	}
	nested := &discordgo.ApplicationCommand{
		Name: "info",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "user",
				Description: "User information",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{Name: "target", Description: "Target user", Type: discordgo.ApplicationCommandOptionUser},
				},
			},
		},
	}

	assert.NotEqual(t, hashCommand(flat), hashCommand(nested))
}
