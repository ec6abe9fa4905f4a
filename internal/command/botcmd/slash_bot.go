package botcmd

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"infobot/internal/bot"
	"infobot/internal/command"
	"infobot/internal/stats"
	"infobot/pkg/util"
)

type BotCommand struct{}

func (c *BotCommand) Name() string        { return "bot" }
func (c *BotCommand) Description() string { return "Bot related commands" }
func (c *BotCommand) Category() string    { return "Information" }

func (c *BotCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "invite",
				Description: "Get bot's invite",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "stats",
				Description: "Get bot's statistics",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "uptime",
				Description: "Get bot's uptime",
			},
		},
	}
}

func (c *BotCommand) Run(ctx *command.SlashContext) error {
	return command.DispatchSubcommand(ctx, map[string]command.SubHandler{
		"invite": c.invite,
		"stats":  c.stats,
		"uptime": c.uptime,
	})
}

// invite delivers the invite embed per DM first; when the DM is blocked the
// channel reply switches to the failure notice instead of the success one.
func (c *BotCommand) invite(ctx *command.SlashContext, _ *command.SubcommandData) error {
	payload := invitePayload(ctx)

	if err := bot.SendDM(ctx.Session, ctx.Invoker().ID, payload); err != nil {
		return bot.RespondEphemeral(ctx.Session, ctx.Event,
			"I cannot send you my information! Is your DM open?")
	}
	return bot.Respond(ctx.Session, ctx.Event,
		"Check your DM for my information! :envelope_with_arrow:")
}

func (c *BotCommand) stats(ctx *command.SlashContext, _ *command.SubcommandData) error {
	snap := stats.Collect(ctx.Session.State, ctx.Session.HeartbeatLatency(), ctx.Started)
	d := stats.Describe(snap)
	d.Thumbnail = ctx.Session.State.User.AvatarURL("256")
	return bot.RespondPayload(ctx.Session, ctx.Event, bot.FromDescription(d))
}

func (c *BotCommand) uptime(ctx *command.SlashContext, _ *command.SubcommandData) error {
	uptime := util.FormatDuration(int64(timeSince(ctx).Seconds()))
	return bot.Respond(ctx.Session, ctx.Event, fmt.Sprintf("My Uptime: `%s`", uptime))
}
