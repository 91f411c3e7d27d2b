package main

import (
	"github.com/VladPetriv/currency_names/config"
	"github.com/VladPetriv/currency_names/internal/app"
	"github.com/VladPetriv/currency_names/pkg/logger"
)

func main() {
	cfg := config.Get()

	logger := logger.New(logger.Options{
		LogLevel:        cfg.Logger.LogLevel,
		LogFile:         cfg.Logger.LogFilename,
		PrettyLogOutput: cfg.Logger.PrettyLogOutput,
	})

	app.Run(cfg, logger)
}
