package command

import (
	"infobot/internal/bot"
)

// SubHandler handles one subcommand with its parsed options.
type SubHandler func(ctx *SlashContext, data *SubcommandData) error

// DispatchSubcommand resolves the invoked subcommand against a static table
// and runs its handler. A missing or unknown subcommand gets the ephemeral
// "Not a valid subcommand" reply and is not treated as a handler failure.
func DispatchSubcommand(ctx *SlashContext, table map[string]SubHandler) error {
	data, err := Subcommand(ctx.Event)
	if err != nil {
		return bot.RespondEphemeral(ctx.Session, ctx.Event, "Not a valid subcommand")
	}
	handler, ok := table[data.Name]
	if !ok {
		return bot.RespondEphemeral(ctx.Session, ctx.Event, "Not a valid subcommand")
	}
	return handler(ctx, data)
}
