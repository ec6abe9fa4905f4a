package describe

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"infobot/pkg/util"
)

// Emoji resolves an emoji in the guild by name or id and describes it.
// Accepts a raw name, an id, or the full <:name:id> mention form. A miss is
// an ErrNotFound so the router can answer with its generic error reply.
func Emoji(g *discordgo.Guild, query string) (Description, error) {
	target := findEmoji(g.Emojis, query)
	if target == nil {
		return Description{}, fmt.Errorf("emoji %q: %w", query, ErrNotFound)
	}

	createdAt, _ := discordgo.SnowflakeTimestamp(target.ID)

	imageURL := discordgo.EndpointEmoji(target.ID)
	if target.Animated {
		imageURL = discordgo.EndpointEmojiAnimated(target.ID)
	}

	d := Description{Author: "Emoji Details"}
	d.addLine("ID", target.ID)
	d.addLine("Name", target.Name)
	d.addLine("Animated", check(target.Animated))
	d.addLine("Created", util.FormatLongDate(createdAt))
	d.Image = imageURL
	return d, nil
}

func findEmoji(emojis []*discordgo.Emoji, query string) *discordgo.Emoji {
	// <a:name:id> mention form: match on the trailing id
	if strings.HasPrefix(query, "<") && strings.HasSuffix(query, ">") {
		trimmed := strings.Trim(query, "<>")
		if idx := strings.LastIndex(trimmed, ":"); idx >= 0 {
			query = trimmed[idx+1:]
		}
	}
	for _, e := range emojis {
		if e.ID == query || e.Name == query {
			return e
		}
	}
	return nil
}
