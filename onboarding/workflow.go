// Package onboarding implements the team-onboarding flow: a joining member
// picks a team in a modal, admins accept or decline the request, and an
// accepted member lands in the matching Slack user group. The sweep variant
// nudges members that no group claims.
package onboarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"

	"github.com/anika4anne/roles-bot-te/models"
	"github.com/anika4anne/roles-bot-te/repos"
)

// Config carries the channel wiring fixed at process start.
type Config struct {
	// MonitoredChannelID is the channel whose joins trigger the modal.
	MonitoredChannelID string
	// AdminChannelID receives the pending requests.
	AdminChannelID string
}

// Workflow drives one onboarding request from channel join to resolution.
// It holds no per-request state; everything a decision needs rides in the
// button payload, and the resolved guard is the only cross-call memory.
type Workflow struct {
	api      repos.SlackAPI
	groups   *repos.UserGroupRepo
	roster   *repos.RosterRepo
	resolved repos.ResolvedRepo
	cfg      Config
	sink     ErrorSink
}

func New(api repos.SlackAPI, groups *repos.UserGroupRepo, roster *repos.RosterRepo, resolved repos.ResolvedRepo, cfg Config) *Workflow {
	return &Workflow{
		api:      api,
		groups:   groups,
		roster:   roster,
		resolved: resolved,
		cfg:      cfg,
		sink:     logSink{},
	}
}

// SetErrorSink replaces the default zerolog sink.
func (w *Workflow) SetErrorSink(sink ErrorSink) {
	if sink != nil {
		w.sink = sink
	}
}

// HandleChannelJoin reacts to a member joining the monitored channel. Joins
// elsewhere are ignored. Join events arrive without a trigger id on some
// transports; in that case the member gets the "Set My Team" prompt instead,
// and the button click supplies a fresh trigger id for the modal.
func (w *Workflow) HandleChannelJoin(ctx context.Context, channelID, userID, triggerID string) error {
	if channelID != w.cfg.MonitoredChannelID {
		return nil
	}
	if triggerID == "" {
		return w.PromptSetTeam(ctx, userID)
	}
	return w.OpenTeamModal(ctx, triggerID, userID)
}

// PromptSetTeam DMs userID a single "Set My Team" button carrying their id.
func (w *Workflow) PromptSetTeam(ctx context.Context, userID string) error {
	text, blocks := sweepPromptBlocks(userID)
	if _, _, err := w.api.PostMessageContext(ctx, userID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionBlocks(blocks...),
	); err != nil {
		w.sink.Report("prompt_set_team", err)
		return err
	}
	return nil
}

// OpenTeamModal renders the team-selection modal. The trigger id is only
// valid for a few seconds, so callers must not sit on it.
func (w *Workflow) OpenTeamModal(ctx context.Context, triggerID, userID string) error {
	if _, err := w.api.OpenViewContext(ctx, triggerID, buildTeamModal()); err != nil {
		w.sink.Report("open_modal", err)
		return err
	}

	log.Debug().Str("user", userID).Msg("Opened team selection modal")
	return nil
}

// HandleTeamSelection moves a submitted selection in front of the admins:
// one pending message in the admin channel, one acknowledgment DM to the
// requester. The selected team id normally comes from the modal's own option
// list, but interaction payloads are attacker-supplied so it is checked
// against the registry anyway.
func (w *Workflow) HandleTeamSelection(ctx context.Context, userID, teamID string) error {
	if _, ok := models.TeamByID(teamID); !ok {
		err := fmt.Errorf("unknown team id %q", teamID)
		w.sink.Report("validate_team", err)
		return err
	}

	value, err := models.NewApprovalPayload(userID, teamID).Encode()
	if err != nil {
		w.sink.Report("encode_payload", err)
		return err
	}

	text, blocks := adminRequestBlocks(userID, teamID, value)
	if _, _, err := w.api.PostMessageContext(ctx, w.cfg.AdminChannelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionBlocks(blocks...),
	); err != nil {
		w.sink.Report("post_admin_request", err)
		return err
	}

	if _, _, err := w.api.PostMessageContext(ctx, userID,
		slack.MsgOptionText(fmt.Sprintf("Thanks for selecting your team: *%s*. Waiting for admin approval.", teamID), false),
	); err != nil {
		w.sink.Report("ack_requester", err)
	}

	log.Info().Str("user", userID).Str("team", teamID).Msg("Team selection forwarded to admins")
	return nil
}

// HandleApprove processes an Accept click: put the user into the group whose
// handle matches the chosen team, rewrite the admin message without its
// buttons, and confirm to the user. Accepting a user who is already a member
// changes nothing.
func (w *Workflow) HandleApprove(ctx context.Context, channelID, messageTS, value string) error {
	payload, err := models.DecodeApprovalPayload(value)
	if err != nil {
		w.sink.Report("decode_payload", err)
		return err
	}

	key := requestKey(channelID, messageTS)
	first, err := w.resolved.MarkResolved(ctx, key)
	if err != nil {
		w.sink.Report("resolve_guard", err)
		return err
	}
	if !first {
		log.Warn().Str("request", key).Msg("Ignoring duplicate resolution attempt")
		return nil
	}

	group, err := w.groups.FindByHandle(ctx, payload.TeamID)
	if err != nil {
		if releaseErr := w.resolved.Release(ctx, key); releaseErr != nil {
			w.sink.Report("resolve_guard", releaseErr)
		}

		if errors.Is(err, repos.ErrGroupNotFound) {
			// Recoverable by an admin: say so in-channel and leave the
			// request pending.
			if _, _, postErr := w.api.PostMessageContext(ctx, channelID,
				slack.MsgOptionText(fmt.Sprintf("User group *%s* not found.", payload.TeamID), false),
			); postErr != nil {
				w.sink.Report("report_missing_group", postErr)
			}
			return nil
		}

		w.sink.Report("lookup_group", err)
		return err
	}

	if err := w.groups.AddMember(ctx, group.ID, payload.UserID); err != nil {
		// The membership write failed, nothing was resolved. Hand the
		// request back so a later click can retry it.
		if releaseErr := w.resolved.Release(ctx, key); releaseErr != nil {
			w.sink.Report("resolve_guard", releaseErr)
		}
		w.sink.Report("add_member", err)
		return err
	}

	accepted := fmt.Sprintf("<@%s> was accepted and added to *%s*.", payload.UserID, group.Name)
	if _, _, _, err := w.api.UpdateMessageContext(ctx, channelID, messageTS, resolvedMessageOptions(accepted)...); err != nil {
		w.sink.Report("rewrite_admin_message", err)
	}

	if _, _, err := w.api.PostMessageContext(ctx, payload.UserID,
		slack.MsgOptionText(fmt.Sprintf("You have been added to *%s*. Welcome aboard!", group.Name), false),
	); err != nil {
		w.sink.Report("notify_accepted", err)
	}

	log.Info().Str("user", payload.UserID).Str("group", group.Name).Msg("Onboarding request accepted")
	return nil
}

// HandleDecline processes a Decline click. The membership gateway is never
// touched on this path.
func (w *Workflow) HandleDecline(ctx context.Context, channelID, messageTS, value string) error {
	payload, err := models.DecodeApprovalPayload(value)
	if err != nil {
		w.sink.Report("decode_payload", err)
		return err
	}

	key := requestKey(channelID, messageTS)
	first, err := w.resolved.MarkResolved(ctx, key)
	if err != nil {
		w.sink.Report("resolve_guard", err)
		return err
	}
	if !first {
		log.Warn().Str("request", key).Msg("Ignoring duplicate resolution attempt")
		return nil
	}

	declined := fmt.Sprintf("<@%s>'s request to join *%s* was declined.", payload.UserID, payload.TeamID)
	if _, _, _, err := w.api.UpdateMessageContext(ctx, channelID, messageTS, resolvedMessageOptions(declined)...); err != nil {
		w.sink.Report("rewrite_admin_message", err)
	}

	if _, _, err := w.api.PostMessageContext(ctx, payload.UserID,
		slack.MsgOptionText(fmt.Sprintf("Your request to join *%s* was declined by the admins.", payload.TeamID), false),
	); err != nil {
		w.sink.Report("notify_declined", err)
	}

	log.Info().Str("user", payload.UserID).Str("team", payload.TeamID).Msg("Onboarding request declined")
	return nil
}

// requestKey derives the stable identifier of a pending request from where
// its admin message lives.
func requestKey(channelID, messageTS string) string {
	return channelID + ":" + messageTS
}
