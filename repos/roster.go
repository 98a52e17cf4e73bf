package repos

import (
	"context"
)

// slackbotID is the workspace's built-in system account.
const slackbotID = "USLACKBOT"

// RosterRepo reads the workspace member list.
type RosterRepo struct {
	api SlackAPI

	// ExcludedUserID is skipped from every roster read, on top of bots and
	// the system account.
	ExcludedUserID string
}

func NewRosterRepo(api SlackAPI, excludedUserID string) *RosterRepo {
	return &RosterRepo{api: api, ExcludedUserID: excludedUserID}
}

// ActiveHumans returns the ids of every workspace member that can hold a team
// assignment: not a bot, not deleted, not the system account, not the
// configured excluded account.
func (r *RosterRepo) ActiveHumans(ctx context.Context) ([]string, error) {
	users, err := r.api.GetUsersContext(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		if u.IsBot || u.Deleted || u.ID == slackbotID || u.ID == r.ExcludedUserID {
			continue
		}
		ids = append(ids, u.ID)
	}

	return ids, nil
}
