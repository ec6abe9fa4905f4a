// Package discord owns the gateway session: lifecycle, slash-command
// registration, and the interaction-routing boundary.
package discord

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"infobot/internal/command"
	"infobot/internal/config"
	"infobot/internal/stats"
	"infobot/internal/storage"
)

// Bot is the Discord side of the process.
type Bot struct {
	dg      *discordgo.Session
	cfg     *config.Config
	storage *storage.Storage
	log     *zap.Logger
	started time.Time
	ready   atomic.Bool
}

func NewBot(cfg *config.Config, store *storage.Storage, log *zap.Logger) *Bot {
	return &Bot{
		cfg:     cfg,
		storage: store,
		log:     log,
		started: time.Now(),
	}
}

// Run opens the gateway session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildPresences |
		discordgo.IntentsGuildVoiceStates
	dg.StateEnabled = true

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info("shutdown signal received, closing Discord session")
	return nil
}

// Ready reports whether the initial gateway handshake has completed.
func (b *Bot) Ready() bool {
	return b.ready.Load()
}

// Stats reads the current aggregate counters off the session state.
func (b *Bot) Stats() stats.Snapshot {
	return stats.Collect(b.dg.State, b.dg.HeartbeatLatency(), b.started)
}

// Started is the process start instant used for uptime.
func (b *Bot) Started() time.Time {
	return b.started
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.ready.Store(true)
	b.log.Info("Discord bot is running",
		zap.String("user", r.User.Username),
		zap.Int("guilds", len(r.Guilds)),
	)

	if !b.cfg.InitSlashCommands {
		b.log.Info("slash command registration skipped")
		return
	}
	for _, g := range r.Guilds {
		if err := b.registerCommands(g.ID); err != nil {
			b.log.Error("failed to register slash commands",
				zap.String("guild", g.ID), zap.Error(err))
		}
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if !b.ready.Load() {
		return // initial GUILD_CREATE burst is handled from onReady
	}
	b.log.Info("bot added to guild", zap.String("guild", g.ID), zap.String("name", g.Name))
	if err := b.registerCommands(g.ID); err != nil {
		b.log.Error("failed to register slash commands",
			zap.String("guild", g.ID), zap.Error(err))
	}
}

// onInteractionCreate is the routing boundary: every handler failure is
// logged here and answered with one generic ephemeral reply. No failure
// propagates further.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	cmd, ok := command.Get(name)
	if !ok {
		b.log.Warn("unknown command", zap.String("command", name))
		return
	}

	ctx := &command.SlashContext{
		Session: s,
		Event:   i,
		Config:  b.cfg,
		Storage: b.storage,
		Log:     b.log,
		Started: b.started,
	}

	if err := cmd.Run(ctx); err != nil {
		b.log.Error("command failed",
			zap.String("command", name),
			zap.String("guild", i.GuildID),
			zap.String("user", ctx.Invoker().ID),
			zap.Error(err),
		)
		if respErr := respondGenericError(s, i); respErr != nil {
			b.log.Warn("failed to deliver error reply", zap.Error(respErr))
		}
	}
}

func respondGenericError(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "An error occurred while processing your request.",
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
