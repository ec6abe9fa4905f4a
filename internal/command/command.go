// Package command holds the slash-command contract, the registry, and the
// routing helpers shared by every command implementation.
package command

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"infobot/internal/config"
	"infobot/internal/storage"
)

// Command is what every slash command implements.
type Command interface {
	Name() string
	Description() string
	Category() string
	Run(ctx *SlashContext) error
}

// SlashProvider exposes the definition registered with Discord. All commands
// here provide one; the interface keeps registration decoupled from Run.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// SlashContext is what the runtime passes to a command on execution.
type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Config  *config.Config
	Storage *storage.Storage
	Log     *zap.Logger
	Started time.Time
}

// Invoker returns the user who triggered the interaction, wherever Discord
// put it (Member in guilds, User in DMs).
func (ctx *SlashContext) Invoker() *discordgo.User {
	if ctx.Event.Member != nil {
		return ctx.Event.Member.User
	}
	return ctx.Event.User
}
