package botcmd

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infobot/internal/command"
	"infobot/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newStubSession(t *testing.T, rt roundTripFunc) *discordgo.Session {
	t.Helper()
	s, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	s.Client.Transport = rt
	s.State.User = &discordgo.User{ID: "bot1", Username: "infobot"}
	return s
}

// interactionReply is the wire shape captured off the interaction callback.
type interactionReply struct {
	Type int `json:"type"`
	Data struct {
		Content string            `json:"content"`
		Flags   int               `json:"flags"`
		Embeds  []json.RawMessage `json:"embeds"`
	} `json:"data"`
}

func inviteInteraction() *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "inter1",
			Token:   "tok",
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "guild1",
			Member:  &discordgo.Member{User: &discordgo.User{ID: "u1", Username: "alice"}},
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "bot",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "invite", Type: discordgo.ApplicationCommandOptionSubCommand},
				},
			},
		},
	}
}

func TestInviteDMBlocked(t *testing.T) {
	var reply interactionReply
	replied := false

	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/users/@me/channels"):
			return httpResponse(http.StatusForbidden,
				`{"message":"Cannot send messages to this user","code":50007}`), nil
		case strings.HasSuffix(r.URL.Path, "/callback"):
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &reply))
			replied = true
			return httpResponse(http.StatusNoContent, ""), nil
		}
		t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		return nil, nil
	})

	ctx := &command.SlashContext{
		Session: newStubSession(t, rt),
		Event:   inviteInteraction(),
		Config:  &config.Config{ClientID: "42"},
		Started: time.Now(),
	}

	require.NoError(t, (&BotCommand{}).Run(ctx))

	require.True(t, replied)
	assert.Equal(t, "I cannot send you my information! Is your DM open?", reply.Data.Content)
	assert.Equal(t, int(discordgo.MessageFlagsEphemeral), reply.Data.Flags)
	assert.Empty(t, reply.Data.Embeds)
}

func TestInviteDMDelivered(t *testing.T) {
	var reply interactionReply
	dmSent := false

	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/users/@me/channels"):
			return httpResponse(http.StatusOK, `{"id":"dm1","type":1}`), nil
		case strings.HasSuffix(r.URL.Path, "/channels/dm1/messages"):
			dmSent = true
			return httpResponse(http.StatusOK, `{"id":"m1","channel_id":"dm1"}`), nil
		case strings.HasSuffix(r.URL.Path, "/callback"):
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &reply))
			return httpResponse(http.StatusNoContent, ""), nil
		}
		t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		return nil, nil
	})

	ctx := &command.SlashContext{
		Session: newStubSession(t, rt),
		Event:   inviteInteraction(),
		Config:  &config.Config{ClientID: "42"},
		Started: time.Now(),
	}

	require.NoError(t, (&BotCommand{}).Run(ctx))

	assert.True(t, dmSent)
	assert.Equal(t, "Check your DM for my information! :envelope_with_arrow:", reply.Data.Content)
	assert.Zero(t, reply.Data.Flags)
}
