package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "datastore.json", cfg.StoragePath)
	assert.True(t, cfg.InitSlashCommands)
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("CLIENT_ID", "42")
	t.Setenv("SUPPORT_SERVER", "https://discord.gg/example")
	t.Setenv("PORT", "8080")
	t.Setenv("INIT_SLASH_COMMANDS", "false")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "42", cfg.ClientID)
	assert.Equal(t, "https://discord.gg/example", cfg.SupportServer)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.InitSlashCommands)
}

func TestNewMissingToken(t *testing.T) {
	// t.Setenv registers the restore; the variable must be fully unset for
	// the required check to trip
	t.Setenv("DISCORD_TOKEN", "placeholder")
	_ = os.Unsetenv("DISCORD_TOKEN")

	_, err := New()
	assert.Error(t, err)
}
