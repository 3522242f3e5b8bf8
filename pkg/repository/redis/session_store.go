package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/artem13815/smartresume/pkg/session"
)

const keyPrefix = "session:"

// SessionStore implements session.Store on Redis. Each session is a single
// key with the configured TTL; expiry is handled by Redis itself.
type SessionStore struct {
	client *goredis.Client
}

func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, id string, userID uuid.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+id, userID.String(), ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, id string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return uuid.Nil, session.ErrNoSession
		}
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, session.ErrNoSession
	}
	return userID, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
