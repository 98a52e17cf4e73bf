package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/rs/zerolog/log"

	utils "github.com/anika4anne/roles-bot-te/utils-go"
)

type Config struct {
	Port           string `env:"LISTEN_ADDR" envDefault:":3000"`
	Timeout        uint64 `env:"TIMEOUT" envDefault:"10"`
	ReadBufferSize int    `env:"READ_BUFFER_SIZE" envDefault:"4096"`
	BodyLimit      int    `env:"BODY_LIMIT" envDefault:"1048576"`
	AppName        string `env:"APP_NAME" envDefault:"RolesBotSweep"`
	IsProduction   bool   `env:"PRODUCTION"`

	BotToken      string `env:"SLACK_BOT_TOKEN"`
	SigningSecret string `env:"SLACK_SIGNING_SECRET"`
	Debug         bool   `env:"SLACK_DEBUG" envDefault:"false"`

	RedisUrl           string `env:"REDIS_URL"`
	MonitoredChannelId string `env:"MONITORED_CHANNEL_ID" envDefault:"C06BS22N3D3"`
	AdminChannelId     string `env:"ADMIN_CHANNEL_ID" envDefault:"C07DPHN9PG9"`
	ExcludedUserId     string `env:"EXCLUDED_USER_ID"`
}

func Parse() (*Config, error) {
	cfg := Config{
		IsProduction: utils.ParseFlags(),
	}

	if err := env.Parse(&cfg); err != nil {
		log.Panic().Err(err).Msg("Failed to parse env config")
	}

	if cfg.SigningSecret == "" {
		log.Panic().Msg("SLACK_SIGNING_SECRET is required")
	}

	return &cfg, nil
}
