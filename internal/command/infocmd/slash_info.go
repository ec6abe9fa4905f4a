package infocmd

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"infobot/internal/bot"
	"infobot/internal/command"
	"infobot/internal/describe"
	"infobot/internal/stats"
)

type InfoCommand struct{}

func (c *InfoCommand) Name() string        { return "info" }
func (c *InfoCommand) Description() string { return "Show various information" }
func (c *InfoCommand) Category() string    { return "Information" }

func (c *InfoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "user",
				Description: "Get user information",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "name",
						Description: "Name of the user",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "channel",
				Description: "Get channel information",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionChannel,
						Name:        "name",
						Description: "Name of the channel",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "guild",
				Description: "Get guild information",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "bot",
				Description: "Get bot information",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "avatar",
				Description: "Display avatar information",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "name",
						Description: "Name of the user",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "emoji",
				Description: "Display emoji information",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Name of the emoji",
						Required:    true,
					},
				},
			},
		},
	}
}

func (c *InfoCommand) Run(ctx *command.SlashContext) error {
	return command.DispatchSubcommand(ctx, map[string]command.SubHandler{
		"user":    c.user,
		"channel": c.channel,
		"guild":   c.guild,
		"bot":     c.bot,
		"avatar":  c.avatar,
		"emoji":   c.emoji,
	})
}

func (c *InfoCommand) user(ctx *command.SlashContext, data *command.SubcommandData) error {
	target := data.User("name")
	if target == nil {
		target = ctx.Invoker()
	}

	member, err := fetchMember(ctx.Session, ctx.Event.GuildID, target.ID)
	if err != nil {
		return fmt.Errorf("fetch member %s: %w", target.ID, err)
	}
	guild, err := fetchGuild(ctx.Session, ctx.Event.GuildID)
	if err != nil {
		return fmt.Errorf("fetch guild %s: %w", ctx.Event.GuildID, err)
	}

	return bot.RespondPayload(ctx.Session, ctx.Event, bot.FromDescription(describe.User(guild, member)))
}

func (c *InfoCommand) channel(ctx *command.SlashContext, data *command.SubcommandData) error {
	channelID := data.ChannelID("name")
	if channelID == "" {
		channelID = ctx.Event.ChannelID
	}

	channel, err := fetchChannel(ctx.Session, channelID)
	if err != nil {
		return fmt.Errorf("fetch channel %s: %w", channelID, err)
	}

	// guild is optional here: DM channels have none
	guild, _ := fetchGuild(ctx.Session, channel.GuildID)

	snap := describe.NewChannelSnapshot(channel, guild)
	return bot.RespondPayload(ctx.Session, ctx.Event, bot.FromDescription(describe.Channel(snap)))
}

func (c *InfoCommand) guild(ctx *command.SlashContext, _ *command.SubcommandData) error {
	guild, err := fetchGuild(ctx.Session, ctx.Event.GuildID)
	if err != nil {
		return fmt.Errorf("fetch guild %s: %w", ctx.Event.GuildID, err)
	}

	// Unresolvable owner fails the whole aggregation; no placeholder.
	owner, err := fetchMember(ctx.Session, guild.ID, guild.OwnerID)
	if err != nil {
		return fmt.Errorf("resolve owner %s of guild %s: %w", guild.OwnerID, guild.ID, err)
	}

	return bot.RespondPayload(ctx.Session, ctx.Event, bot.FromDescription(describe.Guild(guild, owner.User)))
}

func (c *InfoCommand) bot(ctx *command.SlashContext, _ *command.SubcommandData) error {
	snap := stats.Collect(ctx.Session.State, ctx.Session.HeartbeatLatency(), ctx.Started)
	d := stats.Describe(snap)
	d.Thumbnail = ctx.Session.State.User.AvatarURL("256")
	return bot.RespondPayload(ctx.Session, ctx.Event, bot.FromDescription(d))
}

func (c *InfoCommand) avatar(ctx *command.SlashContext, data *command.SubcommandData) error {
	target := data.User("name")
	if target == nil {
		target = ctx.Invoker()
	}
	return bot.RespondPayload(ctx.Session, ctx.Event, bot.FromDescription(describe.Avatar(target)))
}

func (c *InfoCommand) emoji(ctx *command.SlashContext, data *command.SubcommandData) error {
	guild, err := fetchGuild(ctx.Session, ctx.Event.GuildID)
	if err != nil {
		return fmt.Errorf("fetch guild %s: %w", ctx.Event.GuildID, err)
	}

	d, err := describe.Emoji(guild, data.String("name"))
	if err != nil {
		return err
	}
	return bot.RespondPayload(ctx.Session, ctx.Event, bot.FromDescription(d))
}
