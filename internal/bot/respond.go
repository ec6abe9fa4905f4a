package bot

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// ErrDMBlocked is returned by SendDM when the recipient does not accept
// direct messages from the bot.
var ErrDMBlocked = errors.New("direct message delivery blocked")

// RespondPayload answers an interaction with the given payload.
func RespondPayload(s *discordgo.Session, i *discordgo.InteractionCreate, p *Payload) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: p.responseData(),
	})
}

// Respond answers an interaction with plain content.
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return RespondPayload(s, i, Text(content))
}

// RespondEphemeral answers an interaction with content only the invoker sees.
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return RespondPayload(s, i, TextEphemeral(content))
}

// RespondEmbed answers an interaction with a single embed.
func RespondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return RespondPayload(s, i, &Payload{Embeds: []*discordgo.MessageEmbed{embed}})
}

// RespondEmbedEphemeral answers with a single embed only the invoker sees.
func RespondEmbedEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return RespondPayload(s, i, &Payload{Embeds: []*discordgo.MessageEmbed{embed}, Ephemeral: true})
}

// SendDM delivers a payload to the user's DM channel. A send failure is
// reported as ErrDMBlocked; closed DMs are the overwhelmingly common cause.
func SendDM(s *discordgo.Session, userID string, p *Payload) error {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDMBlocked, err)
	}
	_, err = s.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Content:    p.Content,
		Embeds:     p.Embeds,
		Components: p.Components,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDMBlocked, err)
	}
	return nil
}
