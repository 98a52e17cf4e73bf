package repos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/slack-go/slack"

	utils "github.com/anika4anne/roles-bot-te/utils-go"
)

// ErrGroupNotFound is returned when no user group carries the requested handle.
var ErrGroupNotFound = errors.New("user group not found")

// UserGroupRepo is the membership gateway: it wraps the Slack user-group API
// and owns the read-modify-write on member lists. Mutations are serialized
// per group id because UpdateUserGroupMembers replaces the full list.
type UserGroupRepo struct {
	api SlackAPI

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewUserGroupRepo(api SlackAPI) *UserGroupRepo {
	return &UserGroupRepo{api: api, locks: make(map[string]*sync.Mutex)}
}

// FindByHandle resolves a user group by its handle. Returns ErrGroupNotFound
// when the workspace has no group with that handle.
func (r *UserGroupRepo) FindByHandle(ctx context.Context, handle string) (slack.UserGroup, error) {
	groups, err := r.api.GetUserGroupsContext(ctx)
	if err != nil {
		return slack.UserGroup{}, err
	}

	for _, g := range groups {
		if g.Handle == handle {
			return g, nil
		}
	}

	return slack.UserGroup{}, fmt.Errorf("%w: %s", ErrGroupNotFound, handle)
}

// AddMember puts userID into the group, reading the current member list and
// writing it back with the user appended. Adding a user who is already a
// member is a no-op, so a duplicated Accept cannot duplicate the entry.
func (r *UserGroupRepo) AddMember(ctx context.Context, groupID, userID string) error {
	lock := r.groupLock(groupID)
	lock.Lock()
	defer lock.Unlock()

	members, err := r.api.GetUserGroupMembersContext(ctx, groupID)
	if err != nil {
		return err
	}

	if utils.IsInList(userID, &members) != -1 {
		return nil
	}

	members = append(members, userID)
	_, err = r.api.UpdateUserGroupMembersContext(ctx, groupID, strings.Join(members, ","))
	return err
}

// AssignedUsers returns the union of the member sets of every user group in
// the workspace.
func (r *UserGroupRepo) AssignedUsers(ctx context.Context) (map[string]struct{}, error) {
	groups, err := r.api.GetUserGroupsContext(ctx)
	if err != nil {
		return nil, err
	}

	assigned := make(map[string]struct{})
	for _, g := range groups {
		members, err := r.api.GetUserGroupMembersContext(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			assigned[m] = struct{}{}
		}
	}

	return assigned, nil
}

func (r *UserGroupRepo) groupLock(groupID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[groupID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[groupID] = lock
	}
	return lock
}
