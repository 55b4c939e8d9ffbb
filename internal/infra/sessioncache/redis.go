package sessioncache

import (
	"context"
	"errors"
	"time"

	"leaveflow/internal/usecase/balance"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "leaveflow:balance:session:"

// RedisStore holds the single balance snapshot slot for each session. The
// slot expires with the session token; there is no other eviction policy.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string, userID uuid.UUID) (*balance.Snapshot, error) {
	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snap balance.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}

	// A session re-keyed across logins must not leak the previous user's
	// cached balance.
	if snap.UserID != userID {
		return nil, nil
	}
	return &snap, nil
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, snap balance.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+sessionID, raw, s.ttl).Err()
}
