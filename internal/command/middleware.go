package command

import (
	"time"

	"go.uber.org/zap"

	"infobot/internal/bot"
	"infobot/internal/storage"
)

// Middleware wraps a command (logging, guild checks, ...). The wrapped value
// still satisfies Command.
type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	run func(ctx *SlashContext) error
}

func (w *wrappedCommand) Run(ctx *SlashContext) error {
	return w.run(ctx)
}

// WithGuildOnly rejects invocations outside a guild with an ephemeral notice.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			run: func(ctx *SlashContext) error {
				if ctx.Event.GuildID == "" {
					return bot.RespondEphemeral(ctx.Session, ctx.Event,
						"You must be in a guild to use this command.")
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithCommandLogger records each invocation to the log and, when a guild and
// storage are present, to the per-guild usage history. Logging failures are
// warnings, never command failures.
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			run: func(ctx *SlashContext) error {
				err := cmd.Run(ctx)

				user := ctx.Invoker()
				ctx.Log.Info("command invoked",
					zap.String("command", cmd.Name()),
					zap.String("guild", ctx.Event.GuildID),
					zap.String("user", user.ID),
				)

				if ctx.Storage != nil && ctx.Event.GuildID != "" {
					rec := storage.CommandRecord{
						ChannelID:   ctx.Event.ChannelID,
						ChannelName: channelName(ctx),
						GuildName:   guildName(ctx),
						UserID:      user.ID,
						Username:    user.Username,
						Command:     cmd.Name(),
						Datetime:    time.Now(),
					}
					if logErr := ctx.Storage.LogCommand(ctx.Event.GuildID, rec); logErr != nil {
						ctx.Log.Warn("failed to record command usage",
							zap.String("command", cmd.Name()), zap.Error(logErr))
					}
				}
				return err
			},
		}
	}
}

func channelName(ctx *SlashContext) string {
	if channel, err := ctx.Session.State.Channel(ctx.Event.ChannelID); err == nil {
		return channel.Name
	}
	return ""
}

func guildName(ctx *SlashContext) string {
	if guild, err := ctx.Session.State.Guild(ctx.Event.GuildID); err == nil {
		return guild.Name
	}
	return ""
}
