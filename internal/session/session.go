// Package session persists per-attempt state that must survive across
// requests: the timestamp at which a user first opened a survey. Repeated
// GETs of the same survey must never reset the clock.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the per-user, per-survey attempt state store.
type Store interface {
	// StartedOn returns the timestamp at which the user first opened the
	// survey, recording now as that timestamp if none exists yet.
	StartedOn(ctx context.Context, userID uint, slug string, now time.Time) (time.Time, error)
	// Clear drops the recorded timestamp after a completed submission.
	Clear(ctx context.Context, userID uint, slug string) error
}

type redisStore struct {
	client *redis.Client
}

// NewStore returns a redis-backed Store. Keys carry no TTL: a user may walk
// away and submit late, the overage is recorded at submission time.
func NewStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func key(userID uint, slug string) string {
	return fmt.Sprintf("attempt:%d:%s", userID, slug)
}

func (s *redisStore) StartedOn(ctx context.Context, userID uint, slug string, now time.Time) (time.Time, error) {
	k := key(userID, slug)
	// SetNX then Get: the first request wins, every later request reads the
	// value it set.
	if err := s.client.SetNX(ctx, k, now.UTC().Format(time.RFC3339Nano), 0).Err(); err != nil {
		return time.Time{}, err
	}
	raw, err := s.client.Get(ctx, k).Result()
	if err != nil {
		return time.Time{}, err
	}
	started, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed started_on for %s: %w", k, err)
	}
	return started, nil
}

func (s *redisStore) Clear(ctx context.Context, userID uint, slug string) error {
	return s.client.Del(ctx, key(userID, slug)).Err()
}
