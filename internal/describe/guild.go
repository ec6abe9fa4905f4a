package describe

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"infobot/pkg/util"
)

const roleSummaryLimit = 1024

// ChannelCounts is the channel pass result: one bucket per broad channel
// family plus the total.
type ChannelCounts struct {
	Total      int
	Categories int
	Text       int
	Voice      int
	Threads    int
}

// CountChannels partitions the guild's channels into category / text /
// voice-or-stage / thread buckets.
func CountChannels(channels []*discordgo.Channel) ChannelCounts {
	counts := ChannelCounts{Total: len(channels)}
	for _, c := range channels {
		switch KindOf(c.Type) {
		case KindCategory:
			counts.Categories++
		case KindText:
			counts.Text++
		case KindVoice, KindStageVoice:
			counts.Voice++
		case KindPublicThread, KindPrivateThread:
			counts.Threads++
		}
	}
	return counts
}

// MemberCounts is the member pass result: bot/human split crossed with the
// online split.
type MemberCounts struct {
	Total        int
	Humans       int
	Bots         int
	OnlineHumans int
	OnlineBots   int
}

// OnlineTotal is the number of members currently online, bots included.
func (m MemberCounts) OnlineTotal() int {
	return m.OnlineHumans + m.OnlineBots
}

// CountMembers partitions cached members by bot flag and presence. Only the
// exact "online" status counts as online; idle and do-not-disturb bucket
// with offline.
func CountMembers(members []*discordgo.Member, presences []*discordgo.Presence) MemberCounts {
	statuses := make(map[string]discordgo.Status, len(presences))
	for _, p := range presences {
		if p.User != nil {
			statuses[p.User.ID] = p.Status
		}
	}

	counts := MemberCounts{Total: len(members)}
	for _, m := range members {
		if m.User == nil {
			// no user object attached; bucket as an offline human so the
			// human/bot split still adds up to the total
			counts.Humans++
			continue
		}
		online := statuses[m.User.ID] == discordgo.StatusOnline
		if m.User.Bot {
			counts.Bots++
			if online {
				counts.OnlineBots++
			}
		} else {
			counts.Humans++
			if online {
				counts.OnlineHumans++
			}
		}
	}
	return counts
}

// RoleSummary builds the comma-joined "name[memberCount]" string over every
// role except the synthetic everyone-role. Cost is roles × members, which is
// fine at the guild sizes this bot serves.
func RoleSummary(roles []*discordgo.Role, members []*discordgo.Member) string {
	parts := make([]string, 0, len(roles))
	for _, role := range roles {
		if strings.Contains(role.Name, "everyone") {
			continue
		}
		count := 0
		for _, m := range members {
			for _, id := range m.Roles {
				if id == role.ID {
					count++
					break
				}
			}
		}
		parts = append(parts, fmt.Sprintf("%s[%d]", role.Name, count))
	}

	summary := strings.Join(parts, ", ")
	if len(summary) > roleSummaryLimit {
		summary = truncateAtRune(summary, roleSummaryLimit-4) + "..."
	}
	return summary
}

// truncateAtRune cuts s to at most max bytes without splitting a rune.
func truncateAtRune(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// VerificationLabel maps the verification level to its display string. The
// two highest levels keep the table-flip glyphs the bot has always shown.
func VerificationLabel(level discordgo.VerificationLevel) string {
	switch level {
	case discordgo.VerificationLevelVeryHigh:
		return "┻━┻ミヽ(ಠ益ಠ)ノ彡┻━┻"
	case discordgo.VerificationLevelHigh:
		return "(╯°□°）╯︵ ┻━┻"
	case discordgo.VerificationLevelMedium:
		return "Medium"
	case discordgo.VerificationLevelLow:
		return "Low"
	default:
		return "None"
	}
}

// Guild runs the four classification passes over the guild snapshot and
// assembles the full description. The owner is resolved by the caller; the
// aggregation itself never fetches.
func Guild(g *discordgo.Guild, owner *discordgo.User) Description {
	channels := CountChannels(g.Channels)
	members := CountMembers(g.Members, g.Presences)
	roleSummary := RoleSummary(g.Roles, g.Members)
	createdAt, _ := discordgo.SnowflakeTimestamp(g.ID)

	d := Description{Title: "GUILD INFORMATION"}
	d.addLine("Id", g.ID)
	d.addLine("Name", g.Name)
	d.addLine("Owner", owner.Username)
	d.addLine("Region", g.PreferredLocale)

	d.addField(
		fmt.Sprintf("Server Members [%d]", members.Total),
		fmt.Sprintf("```Members: %d\nBots: %d```", members.Humans, members.Bots),
		true,
	)
	d.addField(
		fmt.Sprintf("Online Stats [%d]", members.OnlineTotal()),
		fmt.Sprintf("```Members: %d\nBots: %d```", members.OnlineHumans, members.OnlineBots),
		true,
	)
	d.addField(
		fmt.Sprintf("Categories and channels [%d]", channels.Total),
		fmt.Sprintf("```Categories: %d | Text: %d | Voice: %d | Thread: %d```",
			channels.Categories, channels.Text, channels.Voice, channels.Threads),
		false,
	)
	d.addField(fmt.Sprintf("Roles [%d]", len(g.Roles)), fmt.Sprintf("```%s```", roleSummary), false)
	d.addField("Verification", fmt.Sprintf("```%s```", VerificationLabel(g.VerificationLevel)), true)
	d.addField("Boost Count", fmt.Sprintf("```%d```", g.PremiumSubscriptionCount), true)
	d.addField(
		fmt.Sprintf("Server Created [%s]", util.RelativeTime(createdAt, timeNow())),
		fmt.Sprintf("```%s```", util.FormatLongDate(createdAt)),
		false,
	)

	if g.Icon != "" {
		d.Thumbnail = discordgo.EndpointGuildIcon(g.ID, g.Icon)
	}
	if g.Splash != "" {
		d.Image = discordgo.EndpointGuildSplash(g.ID, g.Splash)
	}

	return d
}
