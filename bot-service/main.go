package main

import (
	"github.com/slack-go/slack"
	"go.uber.org/fx"

	"github.com/anika4anne/roles-bot-te/bot-service/config"
	"github.com/anika4anne/roles-bot-te/bot-service/controllers"
	"github.com/anika4anne/roles-bot-te/onboarding"
	"github.com/anika4anne/roles-bot-te/repos"
	utils "github.com/anika4anne/roles-bot-te/utils-go"
)

func main() {

	opts := []fx.Option{}
	opts = append(opts, provideOptions()...)

	app := fx.New(opts...)

	app.Run()
}

func provideOptions() []fx.Option {
	return []fx.Option{
		fx.Invoke(utils.ConfigureLogger),
		fx.Provide(config.Parse),
		fx.Provide(utils.ConvertConfig[*config.Config, utils.SlackConfig]),
		fx.Provide(utils.ConvertConfig[*config.Config, utils.RedisConfig]),
		fx.Provide(utils.ProvideSlack),
		fx.Provide(utils.ProvideRedis),
		fx.Provide(provideSlackAPI),
		fx.Provide(repos.NewUserGroupRepo),
		fx.Provide(provideRoster),
		fx.Provide(repos.NewResolvedRepo),
		fx.Provide(provideWorkflow),
		fx.Invoke(controllers.RegisterBotController),
	}
}

func provideSlackAPI(client *slack.Client) repos.SlackAPI {
	return client
}

func provideRoster(cfg *config.Config, api repos.SlackAPI) *repos.RosterRepo {
	return repos.NewRosterRepo(api, cfg.ExcludedUserId)
}

func provideWorkflow(cfg *config.Config, api repos.SlackAPI, groups *repos.UserGroupRepo, roster *repos.RosterRepo, resolved repos.ResolvedRepo) *onboarding.Workflow {
	return onboarding.New(api, groups, roster, resolved, onboarding.Config{
		MonitoredChannelID: cfg.MonitoredChannelId,
		AdminChannelID:     cfg.AdminChannelId,
	})
}
