package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/fx"

	"github.com/anika4anne/roles-bot-te/onboarding"
	"github.com/anika4anne/roles-bot-te/sweep-service/config"
)

type ReceiverController struct {
	fx.In

	Workflow *onboarding.Workflow
	Config   *config.Config
}

// RegisterReceiverController mounts the three inbound surfaces: the Events
// API webhook, the interactivity webhook, and the scheduled sweep trigger.
// Webhook handlers acknowledge with 200 before any Slack call is made; the
// sweep trigger is synchronous and reports the Lambda-style status codes.
func RegisterReceiverController(app *fiber.App, c ReceiverController) {
	r := receiver{workflow: c.Workflow, config: c.Config}

	app.Post("/slack/events", r.events)
	app.Post("/slack/interactions", r.interactions)
	app.Post("/jobs/sweep", r.sweep)

	// Anything unrecognized is a bad invocation.
	app.Use(func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"statusCode": fiber.StatusBadRequest})
	})
}

type receiver struct {
	workflow *onboarding.Workflow
	config   *config.Config
}

func (r *receiver) events(c *fiber.Ctx) error {
	body := c.Body()
	if err := r.verifySignature(c, body); err != nil {
		log.Warn().Err(err).Msg("Rejected events request with bad signature")
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if event.Type == slackevents.URLVerification {
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.SendString(challenge.Challenge)
	}

	go func() {
		if err := r.workflow.HandleEvent(context.Background(), event); err != nil {
			log.Error().Err(err).Msg("Event handling failed")
		}
	}()

	return c.SendStatus(fiber.StatusOK)
}

func (r *receiver) interactions(c *fiber.Ctx) error {
	if err := r.verifySignature(c, c.Body()); err != nil {
		log.Warn().Err(err).Msg("Rejected interaction with bad signature")
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(c.FormValue("payload")), &callback); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	go func() {
		if err := r.workflow.HandleInteraction(context.Background(), callback); err != nil {
			log.Error().Err(err).Str("user", callback.User.ID).Msg("Interaction handling failed")
		}
	}()

	return c.SendStatus(fiber.StatusOK)
}

func (r *receiver) sweep(c *fiber.Ctx) error {
	prompted, err := r.workflow.RunSweep(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"statusCode": fiber.StatusInternalServerError})
	}

	return c.JSON(fiber.Map{"statusCode": fiber.StatusOK, "prompted": prompted})
}

// verifySignature checks the Slack signing-secret HMAC on an inbound
// request. Headers are rebuilt because the verifier wants net/http shapes.
func (r *receiver) verifySignature(c *fiber.Ctx, body []byte) error {
	header := http.Header{}
	header.Set("X-Slack-Signature", c.Get("X-Slack-Signature"))
	header.Set("X-Slack-Request-Timestamp", c.Get("X-Slack-Request-Timestamp"))

	verifier, err := slack.NewSecretsVerifier(header, r.config.SigningSecret)
	if err != nil {
		return err
	}
	if _, err := verifier.Write(body); err != nil {
		return err
	}
	return verifier.Ensure()
}
