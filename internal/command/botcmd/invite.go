package botcmd

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"infobot/internal/bot"
	"infobot/internal/command"
)

// InviteURL builds the OAuth authorize link for the application. Pure
// function of the application id; nothing is attached to the session.
func InviteURL(clientID string) string {
	return fmt.Sprintf(
		"https://discord.com/api/oauth2/authorize?client_id=%s&permissions=8&scope=bot%%20applications.commands",
		clientID,
	)
}

func invitePayload(ctx *command.SlashContext) *bot.Payload {
	embed := &discordgo.MessageEmbed{
		Author:      &discordgo.MessageEmbedAuthor{Name: "Invite"},
		Color:       bot.EmbedColor,
		Description: "Hey there! Thanks for considering to invite me\nUse the button below to navigate where you want",
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: ctx.Session.State.User.AvatarURL("256")},
	}

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label: "Invite Link",
			Style: discordgo.LinkButton,
			URL:   InviteURL(ctx.Config.ClientID),
		},
	}
	if ctx.Config.SupportServer != "" {
		buttons = append(buttons, discordgo.Button{
			Label: "Support Server",
			Style: discordgo.LinkButton,
			URL:   ctx.Config.SupportServer,
		})
	}

	return &bot.Payload{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
	}
}

func timeSince(ctx *command.SlashContext) time.Duration {
	return time.Since(ctx.Started)
}
