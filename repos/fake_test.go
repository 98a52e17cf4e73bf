package repos

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// fakeSlack is an in-memory SlackAPI for repo tests.
type fakeSlack struct {
	groups  []slack.UserGroup
	members map[string][]string
	users   []slack.User

	updates map[string]string // group id -> last member list written

	groupsErr  error
	membersErr error
}

func newFakeSlack() *fakeSlack {
	return &fakeSlack{
		members: make(map[string][]string),
		updates: make(map[string]string),
	}
}

func (f *fakeSlack) OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error) {
	return &slack.ViewResponse{}, nil
}

func (f *fakeSlack) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	return channelID, "1700000000.000001", nil
}

func (f *fakeSlack) UpdateMessageContext(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error) {
	return channelID, timestamp, "", nil
}

func (f *fakeSlack) GetUserGroupsContext(ctx context.Context, options ...slack.GetUserGroupsOption) ([]slack.UserGroup, error) {
	return f.groups, f.groupsErr
}

func (f *fakeSlack) GetUserGroupMembersContext(ctx context.Context, userGroup string) ([]string, error) {
	if f.membersErr != nil {
		return nil, f.membersErr
	}
	members, ok := f.members[userGroup]
	if !ok {
		return nil, fmt.Errorf("no_such_subteam")
	}
	return members, nil
}

func (f *fakeSlack) UpdateUserGroupMembersContext(ctx context.Context, userGroup string, members string) (slack.UserGroup, error) {
	f.updates[userGroup] = members
	return slack.UserGroup{ID: userGroup}, nil
}

func (f *fakeSlack) GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error) {
	return f.users, nil
}
