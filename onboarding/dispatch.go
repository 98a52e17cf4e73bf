package onboarding

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// recoverStage converts a handler panic into a reported error. The
// controllers run handlers in detached goroutines, so an unrecovered panic
// from one bad payload would take the whole process down.
func (w *Workflow) recoverStage(stage string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s panicked: %v", stage, r)
		w.sink.Report(stage, *err)
	}
}

// HandleEvent routes a parsed Events API callback into the workflow. Events
// this bot does not subscribe to fall through silently.
func (w *Workflow) HandleEvent(ctx context.Context, event slackevents.EventsAPIEvent) (err error) {
	defer w.recoverStage("handle_event", &err)

	if event.Type != slackevents.CallbackEvent {
		return nil
	}

	switch ev := event.InnerEvent.Data.(type) {
	case *slackevents.MemberJoinedChannelEvent:
		// member_joined_channel events carry no trigger id, so this path
		// lands on the Set My Team prompt fallback.
		return w.HandleChannelJoin(ctx, ev.Channel, ev.User, "")
	}

	return nil
}

// HandleInteraction routes an interaction callback (modal submission or
// button click) to the matching transition. Callers must have acknowledged
// the interaction already.
func (w *Workflow) HandleInteraction(ctx context.Context, callback slack.InteractionCallback) (err error) {
	defer w.recoverStage("handle_interaction", &err)

	switch callback.Type {
	case slack.InteractionTypeViewSubmission:
		if callback.View.CallbackID != TeamSelectCallbackID || callback.View.State == nil {
			return nil
		}
		teamID := callback.View.State.Values[TeamInputBlockID][TeamSelectActionID].SelectedOption.Value
		if teamID == "" {
			return nil
		}
		return w.HandleTeamSelection(ctx, callback.User.ID, teamID)

	case slack.InteractionTypeBlockActions:
		for _, action := range callback.ActionCallback.BlockActions {
			if err := w.handleBlockAction(ctx, callback, action); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *Workflow) handleBlockAction(ctx context.Context, callback slack.InteractionCallback, action *slack.BlockAction) error {
	switch action.ActionID {
	case ApproveActionID:
		return w.HandleApprove(ctx, callback.Channel.ID, callback.Message.Timestamp, action.Value)
	case DeclineActionID:
		return w.HandleDecline(ctx, callback.Channel.ID, callback.Message.Timestamp, action.Value)
	case SetTeamActionID:
		return w.OpenTeamModal(ctx, callback.TriggerID, action.Value)
	}
	return nil
}
