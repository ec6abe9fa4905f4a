package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"infobot/internal/api"
	"infobot/internal/command"
	"infobot/internal/command/botcmd"
	"infobot/internal/command/dogcmd"
	"infobot/internal/command/infocmd"
	"infobot/internal/config"
	"infobot/internal/discord"
	"infobot/internal/dogapi"
	"infobot/internal/logger"
	"infobot/internal/storage"
	v "infobot/internal/version"
)

func main() {
	log := logger.New(v.AppName)
	defer func() { _ = log.Sync() }()

	log.Info("starting bot", zap.String("app", v.AppName))

	cfg, err := config.New()
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal("failed to open storage", zap.Error(err))
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dogs := dogapi.New()

	command.Register(&botcmd.BotCommand{}, command.WithCommandLogger())
	command.Register(&dogcmd.DogCommand{Dogs: dogs}, command.WithCommandLogger())
	command.Register(&infocmd.InfoCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	)

	bot := discord.NewBot(cfg, store, log)

	go api.New(bot, dogs, log).Run(ctx, cfg.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info("received signal, shutting down", zap.String("signal", s.String()))
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Error("Discord bot error", zap.Error(err))
		}
		cancel()
	case <-ctx.Done():
	}

	log.Info("Discord bot exited cleanly")
}
