package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/slack-go/slack"
	"go.uber.org/fx"

	"github.com/anika4anne/roles-bot-te/onboarding"
	"github.com/anika4anne/roles-bot-te/repos"
	server "github.com/anika4anne/roles-bot-te/server-go"
	"github.com/anika4anne/roles-bot-te/sweep-service/config"
	"github.com/anika4anne/roles-bot-te/sweep-service/controllers"
	utils "github.com/anika4anne/roles-bot-te/utils-go"
)

func main() {

	opts := []fx.Option{}
	opts = append(opts, provideOptions()...)
	opts = append(opts, fx.Invoke(run))

	app := fx.New(opts...)

	app.Run()
}

func provideOptions() []fx.Option {
	return []fx.Option{
		fx.Invoke(utils.ConfigureLogger),
		fx.Provide(config.Parse),
		fx.Provide(utils.ConvertConfig[*config.Config, server.Config]),
		fx.Provide(utils.ConvertConfig[*config.Config, utils.SlackConfig]),
		fx.Provide(utils.ConvertConfig[*config.Config, utils.RedisConfig]),
		fx.Provide(utils.ProvideSlack),
		fx.Provide(utils.ProvideRedis),
		fx.Provide(provideSlackAPI),
		fx.Provide(repos.NewUserGroupRepo),
		fx.Provide(provideRoster),
		fx.Provide(repos.NewResolvedRepo),
		fx.Provide(provideWorkflow),
		fx.Provide(server.CreateServer),
		fx.Invoke(controllers.RegisterReceiverController),
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

func run(app *fiber.App, config *config.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			errChan := make(chan error)

			go func() {
				errChan <- app.Listen(config.Port)
			}()

			select {
			case err := <-errChan:
				return err
			case <-time.After(100 * time.Millisecond):
				return nil
			}
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}
