package app

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/VladPetriv/currency_names/config"
	"github.com/VladPetriv/currency_names/internal/api/rest"
	"github.com/VladPetriv/currency_names/internal/api/telegram"
	"github.com/VladPetriv/currency_names/internal/service"
	"github.com/VladPetriv/currency_names/pkg/logger"
)

// Run is used to start the application.
// It blocks until SIGINT or SIGTERM is received.
func Run(cfg *config.Config, logger *logger.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services := service.Services{
		Currency: service.NewCurrency(logger),
	}

	var wg sync.WaitGroup

	server := rest.New(rest.Options{
		Logger:          logger,
		Address:         cfg.HTTP.ServerAddress,
		CurrencyService: services.Currency,
	})

	wg.Add(1)
	go func() {
		defer wg.Done()

		err := server.Start()
		if err != nil {
			logger.Error().Err(err).Msg("serve http api")
			stop()
		}
	}()

	if cfg.Telegram.BotToken != "" {
		messenger, err := telegram.New(telegram.Options{
			Token:         cfg.Telegram.BotToken,
			UpdatesType:   cfg.Telegram.UpdatesType,
			ServerAddress: cfg.Telegram.ServerAddress,
			WebhookURL:    cfg.Telegram.WebhookURL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("create telegram messenger")
		}
		defer func() {
			err := messenger.Close()
			if err != nil {
				logger.Error().Err(err).Msg("close telegram messenger")
			}
		}()

		services.Event = service.NewEvent(&service.EventOptions{
			Logger:          logger,
			APIs:            service.APIs{Messenger: messenger},
			CurrencyService: services.Currency,
			WorkersCount:    cfg.Telegram.WorkersCount,
		})

		wg.Add(1)
		go func() {
			defer wg.Done()
			services.Event.Listen(ctx)
		}()
	} else {
		logger.Info().Msg("telegram bot token is not set, bot is disabled")
	}

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	err := server.Shutdown()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("shutdown http api")
	}

	wg.Wait()
	logger.Info().Msg("application stopped")
}
