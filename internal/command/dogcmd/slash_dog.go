package dogcmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"infobot/internal/bot"
	"infobot/internal/command"
	"infobot/internal/dogapi"
)

type DogCommand struct {
	Dogs *dogapi.Client
}

func (c *DogCommand) Name() string        { return "dog" }
func (c *DogCommand) Description() string { return "Get a random dog image" }
func (c *DogCommand) Category() string    { return "Fun" }

func (c *DogCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *DogCommand) Run(ctx *command.SlashContext) error {
	image, err := c.Dogs.Random(context.Background())
	if err != nil {
		return fmt.Errorf("fetch dog image: %w", err)
	}

	embed := &discordgo.MessageEmbed{
		Title:     "🐕 Random Dog Image",
		Color:     bot.EmbedColor,
		Image:     &discordgo.MessageEmbedImage{URL: image.URL},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	return bot.RespondEmbed(ctx.Session, ctx.Event, embed)
}
