package describe

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"infobot/pkg/util"
)

// User builds the member description: identity lines, account/join
// timestamps, and the member's roles resolved against the guild snapshot.
func User(g *discordgo.Guild, m *discordgo.Member) Description {
	u := m.User
	createdAt, _ := discordgo.SnowflakeTimestamp(u.ID)

	d := Description{Author: "User Details"}
	d.addLine("ID", u.ID)
	d.addLine("Tag", u.String())
	d.addLine("isBot", check(u.Bot))
	d.addLine("Account Created", util.FormatLongDate(createdAt))
	if !m.JoinedAt.IsZero() {
		d.addLine("Joined Server", util.RelativeTime(m.JoinedAt, timeNow()))
	}

	names := roleNames(g, m.Roles)
	value := "None"
	if len(names) > 0 {
		value = strings.Join(names, ", ")
	}
	d.addField(fmt.Sprintf("Roles [%d]", len(names)), value, false)

	d.Thumbnail = u.AvatarURL("256")
	return d
}

// Avatar builds the avatar description for a user: URL and format, with the
// image itself attached.
func Avatar(u *discordgo.User) Description {
	format := "png"
	if strings.HasPrefix(u.Avatar, "a_") {
		format = "gif"
	}

	d := Description{Author: "Avatar"}
	d.addLine("ID", u.ID)
	d.addLine("Tag", u.String())
	d.addLine("Format", format)
	d.Image = u.AvatarURL("256")
	return d
}

func roleNames(g *discordgo.Guild, ids []string) []string {
	if g == nil {
		return nil
	}
	byID := make(map[string]string, len(g.Roles))
	for _, r := range g.Roles {
		byID[r.ID] = r.Name
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
