package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"infobot/internal/command"
	"infobot/pkg/util"
)

const (
	// Discord allows far more, but registration is not latency-sensitive
	// and a modest pace keeps a multi-guild startup well clear of limits.
	registerRatePerSecond = 10
	registerWorkers       = 4
)

// registerCommands reconciles the registered command set with what Discord
// has for the guild: obsolete commands are deleted, changed or new ones are
// created. Definition hashes are cached in storage so an unchanged command
// costs nothing on restart.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	existing, err := b.dg.ApplicationCommands(appID, guildID)
	if err != nil {
		// reconciliation continues on the hash cache alone, but a listing
		// failure must not pass silently: commands deleted on Discord stay
		// missing until the next successful pass
		b.log.Warn("failed to list registered commands",
			zap.String("guild", guildID), zap.Error(err))
	}

	localHashes, err := b.storage.CommandHashes(guildID)
	if err != nil {
		b.log.Warn("failed to load command hash cache", zap.String("guild", guildID), zap.Error(err))
		localHashes = map[string]string{}
	}

	var wanted []*discordgo.ApplicationCommand
	wantedHashes := make(map[string]string)
	for _, cmd := range command.All() {
		provider, ok := cmd.(command.SlashProvider)
		if !ok {
			continue
		}
		def := provider.SlashDefinition()
		if def == nil {
			continue
		}
		wanted = append(wanted, def)
		wantedHashes[def.Name] = hashCommand(def)
	}

	for _, old := range existing {
		if _, ok := wantedHashes[old.Name]; !ok {
			b.log.Info("deleting obsolete command",
				zap.String("guild", guildID), zap.String("command", old.Name))
			if err := b.dg.ApplicationCommandDelete(appID, guildID, old.ID); err != nil {
				b.log.Error("failed to delete command",
					zap.String("command", old.Name), zap.Error(err))
			}
			delete(localHashes, old.Name)
		}
	}

	var changed []*discordgo.ApplicationCommand
	for _, cmd := range wanted {
		if localHashes[cmd.Name] != wantedHashes[cmd.Name] {
			changed = append(changed, cmd)
		}
	}

	if len(changed) > 0 {
		b.log.Info("registering changed commands",
			zap.String("guild", guildID), zap.Int("count", len(changed)))

		limiter := rate.NewLimiter(registerRatePerSecond, 1)
		err := util.Parallel(context.Background(), changed, registerWorkers,
			func(ctx context.Context, def *discordgo.ApplicationCommand) error {
				if err := limiter.Wait(ctx); err != nil {
					return err
				}
				if _, err := b.dg.ApplicationCommandCreate(appID, guildID, def); err != nil {
					b.log.Error("failed to create command",
						zap.String("command", def.Name), zap.Error(err))
					return nil // keep registering the rest
				}
				b.log.Info("command registered",
					zap.String("guild", guildID), zap.String("command", def.Name))
				return nil
			})
		if err != nil {
			return err
		}
		for _, cmd := range changed {
			localHashes[cmd.Name] = wantedHashes[cmd.Name]
		}
	}

	return b.storage.SetCommandHashes(guildID, localHashes)
}
