package controllers

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"go.uber.org/fx"

	"github.com/anika4anne/roles-bot-te/bot-service/config"
	"github.com/anika4anne/roles-bot-te/onboarding"
)

type BotController struct {
	fx.In

	Client   *slack.Client
	Workflow *onboarding.Workflow
	Config   *config.Config
}

// RegisterBotController wires the Socket Mode event loop into the fx
// lifecycle. Each inbound event is acked first and then handled in its own
// goroutine, so one slow Slack call cannot stall the stream or blow the ack
// deadline.
func RegisterBotController(lc fx.Lifecycle, c BotController) error {
	if c.Config.AppToken == "" {
		return errors.New("SLACK_APP_TOKEN is required for socket mode")
	}
	if !strings.HasPrefix(c.Config.AppToken, "xapp-") {
		return errors.New("app token must start with xapp-")
	}

	socketClient := socketmode.New(c.Client, socketmode.OptionDebug(c.Config.Debug))
	b := &bot{socket: socketClient, workflow: c.Workflow}

	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go b.dispatch(runCtx)
			go func() {
				if err := socketClient.RunContext(runCtx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error().Err(err).Msg("Socket mode loop exited")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})

	return nil
}

type bot struct {
	socket   *socketmode.Client
	workflow *onboarding.Workflow
}

func (b *bot) dispatch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-b.socket.Events:
			if !ok {
				return
			}
			b.handleEvent(ctx, evt)
		}
	}
}

func (b *bot) handleEvent(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		log.Debug().Msg("Connecting to Slack in socket mode")

	case socketmode.EventTypeConnected:
		log.Info().Msg("Connected to Slack in socket mode")

	case socketmode.EventTypeConnectionError:
		log.Error().Interface("data", evt.Data).Msg("Socket mode connection error")

	case socketmode.EventTypeEventsAPI:
		event, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			return
		}
		b.socket.Ack(*evt.Request)
		go func() {
			if err := b.workflow.HandleEvent(ctx, event); err != nil {
				log.Error().Err(err).Msg("Event handling failed")
			}
		}()

	case socketmode.EventTypeInteractive:
		callback, ok := evt.Data.(slack.InteractionCallback)
		if !ok {
			return
		}
		b.socket.Ack(*evt.Request)
		go func() {
			if err := b.workflow.HandleInteraction(ctx, callback); err != nil {
				log.Error().Err(err).Str("user", callback.User.ID).Msg("Interaction handling failed")
			}
		}()
	}
}
