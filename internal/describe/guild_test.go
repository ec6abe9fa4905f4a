package describe

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountChannels(t *testing.T) {
	channels := []*discordgo.Channel{
		{Type: discordgo.ChannelTypeGuildText},
		{Type: discordgo.ChannelTypeGuildText},
		{Type: discordgo.ChannelTypeGuildText},
		{Type: discordgo.ChannelTypeGuildVoice},
		{Type: discordgo.ChannelTypeGuildCategory},
	}

	counts := CountChannels(channels)

	assert.Equal(t, 5, counts.Total)
	assert.Equal(t, 3, counts.Text)
	assert.Equal(t, 1, counts.Voice)
	assert.Equal(t, 1, counts.Categories)
	assert.Equal(t, 0, counts.Threads)
}

func TestCountMembers(t *testing.T) {
	var members []*discordgo.Member
	var presences []*discordgo.Presence

	addMember := func(id string, bot bool, status discordgo.Status) {
		members = append(members, &discordgo.Member{
			User: &discordgo.User{ID: id, Bot: bot},
		})
		if status != "" {
			presences = append(presences, &discordgo.Presence{
				User:   &discordgo.User{ID: id},
				Status: status,
			})
		}
	}

	for i := 0; i < 4; i++ {
		addMember("human-on-"+string(rune('a'+i)), false, discordgo.StatusOnline)
	}
	addMember("human-idle", false, discordgo.StatusIdle)
	addMember("human-dnd", false, discordgo.StatusDoNotDisturb)
	for i := 0; i < 4; i++ {
		addMember("human-off-"+string(rune('a'+i)), false, "")
	}
	addMember("bot-on", true, discordgo.StatusOnline)
	addMember("bot-off", true, discordgo.StatusOffline)

	counts := CountMembers(members, presences)

	assert.Equal(t, 12, counts.Total)
	assert.Equal(t, 10, counts.Humans)
	assert.Equal(t, 2, counts.Bots)
	assert.Equal(t, 4, counts.OnlineHumans)
	assert.Equal(t, 1, counts.OnlineBots)
	assert.Equal(t, 5, counts.OnlineTotal())

	// humans + bots always adds up to the total
	assert.Equal(t, counts.Total, counts.Humans+counts.Bots)
}

func TestCountMembersNilUser(t *testing.T) {
	members := []*discordgo.Member{
		{User: &discordgo.User{ID: "u1"}},
		{},
		{User: &discordgo.User{ID: "b1", Bot: true}},
	}

	counts := CountMembers(members, nil)

	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 2, counts.Humans)
	assert.Equal(t, 1, counts.Bots)
	assert.Equal(t, counts.Total, counts.Humans+counts.Bots)
	assert.Equal(t, 0, counts.OnlineTotal())
}

func TestRoleSummary(t *testing.T) {
	roles := []*discordgo.Role{
		{ID: "r-everyone", Name: "@everyone"},
		{ID: "r-mod", Name: "Moderator"},
		{ID: "r-member", Name: "Member"},
		{ID: "r-empty", Name: "Ghost"},
	}
	members := []*discordgo.Member{
		{User: &discordgo.User{ID: "u1"}, Roles: []string{"r-mod", "r-member"}},
		{User: &discordgo.User{ID: "u2"}, Roles: []string{"r-member"}},
		{User: &discordgo.User{ID: "u3"}, Roles: []string{"r-member"}},
	}

	summary := RoleSummary(roles, members)

	assert.Equal(t, "Moderator[1], Member[3], Ghost[0]", summary)
	assert.NotContains(t, summary, "everyone")
}

func TestRoleSummaryTruncation(t *testing.T) {
	// multi-byte role names so a careless byte cut would split a rune
	var roles []*discordgo.Role
	for i := 0; i < 100; i++ {
		roles = append(roles, &discordgo.Role{
			ID:   "r" + string(rune('0'+i%10)),
			Name: strings.Repeat("ロール", 5),
		})
	}

	summary := RoleSummary(roles, nil)

	require.LessOrEqual(t, len(summary), 1024)
	assert.True(t, strings.HasSuffix(summary, "..."))
	assert.True(t, utf8.ValidString(summary))
}

func TestVerificationLabel(t *testing.T) {
	assert.Equal(t, "None", VerificationLabel(discordgo.VerificationLevelNone))
	assert.Equal(t, "Low", VerificationLabel(discordgo.VerificationLevelLow))
	assert.Equal(t, "Medium", VerificationLabel(discordgo.VerificationLevelMedium))
	assert.Equal(t, "(╯°□°）╯︵ ┻━┻", VerificationLabel(discordgo.VerificationLevelHigh))
	assert.Equal(t, "┻━┻ミヽ(ಠ益ಠ)ノ彡┻━┻", VerificationLabel(discordgo.VerificationLevelVeryHigh))
}

func TestGuildDescription(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	g := &discordgo.Guild{
		ID:              "81384788765712384", // early 2015 snowflake
		Name:            "Test Server",
		PreferredLocale: "en-US",
		Channels: []*discordgo.Channel{
			{Type: discordgo.ChannelTypeGuildText},
			{Type: discordgo.ChannelTypeGuildVoice},
		},
		Members: []*discordgo.Member{
			{User: &discordgo.User{ID: "owner1"}},
		},
		Roles: []*discordgo.Role{
			{ID: "r1", Name: "Admin"},
		},
		VerificationLevel:        discordgo.VerificationLevelHigh,
		PremiumSubscriptionCount: 7,
	}
	owner := &discordgo.User{ID: "owner1", Username: "alice"}

	d := Guild(g, owner)

	assert.Equal(t, "GUILD INFORMATION", d.Title)
	assert.Equal(t, []Field{
		{Label: "Id", Value: "81384788765712384"},
		{Label: "Name", Value: "Test Server"},
		{Label: "Owner", Value: "alice"},
		{Label: "Region", Value: "en-US"},
	}, d.Lines)

	require.Len(t, d.Fields, 7)
	assert.Equal(t, "Server Members [1]", d.Fields[0].Name)
	assert.Equal(t, "Online Stats [0]", d.Fields[1].Name)
	assert.Equal(t, "Categories and channels [2]", d.Fields[2].Name)
	assert.Equal(t, "```Categories: 0 | Text: 1 | Voice: 1 | Thread: 0```", d.Fields[2].Value)
	assert.Equal(t, "Roles [1]", d.Fields[3].Name)
	assert.Equal(t, "Verification", d.Fields[4].Name)
	assert.Equal(t, "```(╯°□°）╯︵ ┻━┻```", d.Fields[4].Value)
	assert.Equal(t, "Boost Count", d.Fields[5].Name)
	assert.Equal(t, "```7```", d.Fields[5].Value)
	assert.Contains(t, d.Fields[6].Name, "Server Created [")
	assert.Contains(t, d.Fields[6].Name, "years ago")

	// no icon or splash set, so no images
	assert.Empty(t, d.Thumbnail)
	assert.Empty(t, d.Image)
}
