package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/rs/zerolog/log"

	utils "github.com/anika4anne/roles-bot-te/utils-go"
)

type Config struct {
	AppName            string `env:"APP_NAME" envDefault:"RolesBot"`
	IsProduction       bool
	BotToken           string `env:"SLACK_BOT_TOKEN"`
	AppToken           string `env:"SLACK_APP_TOKEN"`
	Debug              bool   `env:"SLACK_DEBUG" envDefault:"false"`
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

	return &cfg, nil
}
