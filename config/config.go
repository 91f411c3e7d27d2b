package config

import (
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents an app config.
type Config struct {
	HTTP     HTTP
	Telegram Telegram
	Logger   Logger
}

// HTTP represents a configuration of the currency names HTTP API.
type HTTP struct {
	ServerAddress string `env:"HTTP_SERVER_ADDRESS" env-default:":8080"`
}

// Telegram represents a telegram bot configuration.
// The bot is started only when BotToken is set.
type Telegram struct {
	BotToken      string `env:"BOT_TOKEN"`
	UpdatesType   string `env:"BOT_UPDATES_TYPE" env-default:"polling"`
	WebhookURL    string `env:"BOT_WEBHOOK_URL"`
	ServerAddress string `env:"BOT_SERVER_ADDRESS" env-default:":8443"`
	WorkersCount  int    `env:"BOT_WORKERS_COUNT" env-default:"5"`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"LOGGER_LOG_LEVEL" env-default:"debug"`
	LogFilename     string `env:"LOGGER_LOG_FILENAME" env-default:""`
	PrettyLogOutput bool   `env:"LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
}

var (
	config Config
	once   sync.Once
)

// Get returns a new config.
func Get() *Config {
	once.Do(func() {
		err := cleanenv.ReadEnv(&config)
		if err != nil {
			log.Fatalf("read env: %v", err)
		}
	})

	return &config
}
