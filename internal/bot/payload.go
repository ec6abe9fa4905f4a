// Package bot assembles reply payloads and sends them through the Discord
// transport: interaction responses and direct messages.
package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"infobot/internal/describe"
)

// EmbedColor is the accent color used on every embed the bot sends.
const EmbedColor = 0x5865F2

// Payload is the reply contract between command handlers and the transport.
type Payload struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent
	Ephemeral  bool
}

// Text wraps plain content in a payload.
func Text(content string) *Payload {
	return &Payload{Content: content}
}

// TextEphemeral wraps plain content in a payload visible only to the invoker.
func TextEphemeral(content string) *Payload {
	return &Payload{Content: content, Ephemeral: true}
}

// FromDescription wraps a description into a single-embed payload.
func FromDescription(d describe.Description) *Payload {
	return &Payload{Embeds: []*discordgo.MessageEmbed{EmbedFromDescription(d)}}
}

// EmbedFromDescription renders a description as an embed: every labeled line
// becomes a "❯ **Label:** value" row, named blocks become embed fields.
func EmbedFromDescription(d describe.Description) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, line := range d.Lines {
		fmt.Fprintf(&sb, "❯ **%s:** %s\n", line.Label, line.Value)
	}

	embed := &discordgo.MessageEmbed{
		Title:       d.Title,
		Description: sb.String(),
		Color:       EmbedColor,
	}
	if d.Author != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: d.Author}
	}
	for _, f := range d.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	if d.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: d.Thumbnail}
	}
	if d.Image != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: d.Image}
	}
	return embed
}

func (p *Payload) responseData() *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:    p.Content,
		Embeds:     p.Embeds,
		Components: p.Components,
	}
	if p.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}
