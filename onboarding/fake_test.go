package onboarding

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

type sentMessage struct {
	Channel string
	TS      string
	Text    string
	Blocks  string
}

// fakeSlack records every API call the workflow makes. Message options are
// applied through slack.UnsafeApplyMsgOptions so tests can assert on the
// text and blocks that would hit the wire.
type fakeSlack struct {
	groups  []slack.UserGroup
	members map[string][]string
	users   []slack.User

	views        []slack.ModalViewRequest
	viewTriggers []string
	posted       []sentMessage
	updated      []sentMessage
	groupWrites  map[string][]string // group id -> member lists written, in order

	postErr       error
	groupWriteErr error
	nextTS        int
}

func newFakeSlack() *fakeSlack {
	return &fakeSlack{
		members:     make(map[string][]string),
		groupWrites: make(map[string][]string),
	}
}

func (f *fakeSlack) apply(channelID string, options ...slack.MsgOption) sentMessage {
	_, values, _ := slack.UnsafeApplyMsgOptions("xoxb-test", channelID, slack.APIURL, options...)
	return sentMessage{
		Channel: channelID,
		Text:    values.Get("text"),
		Blocks:  values.Get("blocks"),
	}
}

func (f *fakeSlack) OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error) {
	f.views = append(f.views, view)
	f.viewTriggers = append(f.viewTriggers, triggerID)
	return &slack.ViewResponse{}, nil
}

func (f *fakeSlack) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	if f.postErr != nil {
		return "", "", f.postErr
	}
	msg := f.apply(channelID, options...)
	f.nextTS++
	msg.TS = fmt.Sprintf("1700000000.%06d", f.nextTS)
	f.posted = append(f.posted, msg)
	return channelID, msg.TS, nil
}

func (f *fakeSlack) UpdateMessageContext(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error) {
	msg := f.apply(channelID, options...)
	msg.TS = timestamp
	f.updated = append(f.updated, msg)
	return channelID, timestamp, msg.Text, nil
}

func (f *fakeSlack) GetUserGroupsContext(ctx context.Context, options ...slack.GetUserGroupsOption) ([]slack.UserGroup, error) {
	return f.groups, nil
}

func (f *fakeSlack) GetUserGroupMembersContext(ctx context.Context, userGroup string) ([]string, error) {
	members, ok := f.members[userGroup]
	if !ok {
		return nil, fmt.Errorf("no_such_subteam")
	}
	return members, nil
}

func (f *fakeSlack) UpdateUserGroupMembersContext(ctx context.Context, userGroup string, members string) (slack.UserGroup, error) {
	if f.groupWriteErr != nil {
		return slack.UserGroup{}, f.groupWriteErr
	}
	f.groupWrites[userGroup] = append(f.groupWrites[userGroup], members)
	var name string
	for _, g := range f.groups {
		if g.ID == userGroup {
			name = g.Name
		}
	}
	return slack.UserGroup{ID: userGroup, Name: name}, nil
}

func (f *fakeSlack) GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error) {
	return f.users, nil
}

// dmsTo returns the messages posted straight to a user id.
func (f *fakeSlack) dmsTo(userID string) []sentMessage {
	var out []sentMessage
	for _, m := range f.posted {
		if m.Channel == userID {
			out = append(out, m)
		}
	}
	return out
}

// postedTo returns the messages posted to a channel.
func (f *fakeSlack) postedTo(channelID string) []sentMessage {
	var out []sentMessage
	for _, m := range f.posted {
		if m.Channel == channelID {
			out = append(out, m)
		}
	}
	return out
}
