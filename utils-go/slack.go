package utils

import (
	"errors"
	"strings"

	"github.com/slack-go/slack"
)

type SlackConfig struct {
	BotToken string `env:"SLACK_BOT_TOKEN"`
	AppToken string `env:"SLACK_APP_TOKEN"`
	Debug    bool   `env:"SLACK_DEBUG" envDefault:"false"`
}

// ProvideSlack builds the shared Slack web API client. The app token is only
// required by services running a Socket Mode loop, so it is validated there.
func ProvideSlack(config *SlackConfig) (*slack.Client, error) {
	if config.BotToken == "" {
		return nil, errors.New("SLACK_BOT_TOKEN is required")
	}
	if !strings.HasPrefix(config.BotToken, "xoxb-") {
		return nil, errors.New("bot token must start with xoxb-")
	}

	opts := []slack.Option{slack.OptionDebug(config.Debug)}
	if config.AppToken != "" {
		opts = append(opts, slack.OptionAppLevelToken(config.AppToken))
	}

	return slack.New(config.BotToken, opts...), nil
}
