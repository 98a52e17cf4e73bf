package onboarding

import (
	"github.com/slack-go/slack"

	"github.com/anika4anne/roles-bot-te/models"
)

// Identifiers Slack echoes back on interactions. Changing any of these
// orphans in-flight modals and messages.
const (
	TeamSelectCallbackID = "team_select_modal"
	TeamInputBlockID     = "team_input"
	TeamSelectActionID   = "team_selected"
	ApproveActionID      = "approve_user"
	DeclineActionID      = "decline_user"
	SetTeamActionID      = "set_team"
)

// buildTeamModal renders the team-selection view: one static-select option
// per registry team, in registry order.
func buildTeamModal() slack.ModalViewRequest {
	options := make([]*slack.OptionBlockObject, 0, len(models.Teams))
	for _, team := range models.Teams {
		options = append(options, slack.NewOptionBlockObject(
			team.ID,
			slack.NewTextBlockObject(slack.PlainTextType, team.Label, false, false),
			nil,
		))
	}

	selectElement := slack.NewOptionsSelectBlockElement(
		slack.OptTypeStatic,
		slack.NewTextBlockObject(slack.PlainTextType, "Select a team", false, false),
		TeamSelectActionID,
		options...,
	)

	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: TeamSelectCallbackID,
		Title:      slack.NewTextBlockObject(slack.PlainTextType, "Welcome to TEDI!", false, false),
		Submit:     slack.NewTextBlockObject(slack.PlainTextType, "Submit", false, false),
		Close:      slack.NewTextBlockObject(slack.PlainTextType, "Cancel", false, false),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewInputBlock(
					TeamInputBlockID,
					slack.NewTextBlockObject(slack.PlainTextType, "Which team are you part of?", false, false),
					nil,
					selectElement,
				),
			},
		},
	}
}
