package repos

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// resolvedTTL bounds how long a resolved marker is kept. A stray duplicate
// click arrives within seconds, not days.
const resolvedTTL = 24 * time.Hour

// ResolvedRepo remembers which onboarding requests have already been acted
// on. Rewriting the admin message removes its buttons, but the payload on
// the original message stays live, so this set is the real duplicate guard.
type ResolvedRepo interface {
	// MarkResolved records key as resolved. Returns true when this call was
	// the first to resolve it.
	MarkResolved(ctx context.Context, key string) (bool, error)
	// Release forgets a marker so the request can be acted on again. Used
	// when a resolution attempt fails before reaching the platform.
	Release(ctx context.Context, key string) error
}

// NewResolvedRepo picks the redis-backed guard when a client is available,
// otherwise the in-memory one. The in-memory guard is per-process only,
// which matches the single-instance deployment.
func NewResolvedRepo(client *redis.Client) ResolvedRepo {
	if client != nil {
		return &redisResolvedRepo{client: client}
	}
	return &memoryResolvedRepo{seen: make(map[string]time.Time)}
}

type memoryResolvedRepo struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

func (r *memoryResolvedRepo) MarkResolved(ctx context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for k, at := range r.seen {
		if now.Sub(at) > resolvedTTL {
			delete(r.seen, k)
		}
	}

	if _, ok := r.seen[key]; ok {
		return false, nil
	}
	r.seen[key] = now
	return true, nil
}

func (r *memoryResolvedRepo) Release(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.seen, key)
	return nil
}

type redisResolvedRepo struct {
	client *redis.Client
}

func (r *redisResolvedRepo) MarkResolved(ctx context.Context, key string) (bool, error) {
	return r.client.SetNX(ctx, "resolved:"+key, 1, resolvedTTL).Result()
}

func (r *redisResolvedRepo) Release(ctx context.Context, key string) error {
	return r.client.Del(ctx, "resolved:"+key).Err()
}
