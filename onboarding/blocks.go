package onboarding

import (
	"fmt"

	"github.com/slack-go/slack"
)

// adminRequestBlocks builds the pending admin message: the request line plus
// Accept/Decline buttons whose values carry the encoded approval payload.
func adminRequestBlocks(userID, teamID, payloadValue string) (string, []slack.Block) {
	text := fmt.Sprintf("<@%s> has joined TEDI, team: *%s*", userID, teamID)

	accept := slack.NewButtonBlockElement(
		ApproveActionID,
		payloadValue,
		slack.NewTextBlockObject(slack.PlainTextType, "Accept Role", false, false),
	)
	accept.Style = slack.StylePrimary

	decline := slack.NewButtonBlockElement(
		DeclineActionID,
		payloadValue,
		slack.NewTextBlockObject(slack.PlainTextType, "Decline Role", false, false),
	)
	decline.Style = slack.StyleDanger

	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, text, false, false),
			nil, nil,
		),
		slack.NewActionBlock("", accept, decline),
	}

	return text, blocks
}

// resolvedMessageOptions rewrites a pending admin message to its final text
// with an explicitly empty block list, which strips the action buttons.
func resolvedMessageOptions(text string) []slack.MsgOption {
	return []slack.MsgOption{
		slack.MsgOptionText(text, false),
		slack.MsgOptionBlocks([]slack.Block{}...),
	}
}

// sweepPromptBlocks builds the private nudge sent to an unassigned user. The
// button value carries the user's own id so the click re-enters the flow for
// the right member.
func sweepPromptBlocks(userID string) (string, []slack.Block) {
	text := "You're not part of a team yet. Pick yours to get started."

	button := slack.NewButtonBlockElement(
		SetTeamActionID,
		userID,
		slack.NewTextBlockObject(slack.PlainTextType, "Set My Team", false, false),
	)
	button.Style = slack.StylePrimary

	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, text, false, false),
			nil, nil,
		),
		slack.NewActionBlock("", button),
	}

	return text, blocks
}
