// Package session stores the typed per-user session records in Redis.
// The browser only ever holds a signed token naming the record; all
// state, including the cart, stays server-side under a TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/online-market/internal/model"
	"github.com/iliyamo/online-market/internal/utils"
)

// ErrNotFound is returned when a session id matches no record, either
// because it expired or was cleared at logout.
var ErrNotFound = errors.New("session not found")

// Store is the session persistence contract. Handlers depend on this
// interface; RedisStore is the production implementation.
type Store interface {
	Create(ctx context.Context, sess *model.Session) (string, error)
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, id string, sess *model.Session) error
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps each session as a JSON document under session:<id>
// with the configured TTL. Saving refreshes the TTL so active users are
// not logged out mid-visit.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Create stores a fresh session under a random id and returns the id.
func (s *RedisStore) Create(ctx context.Context, sess *model.Session) (string, error) {
	id, err := utils.NewSessionID()
	if err != nil {
		return "", err
	}
	if err := s.Save(ctx, id, sess); err != nil {
		return "", err
	}
	return id, nil
}

// Get loads a session record. Expired or deleted ids fail with ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (*model.Session, error) {
	raw, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Save writes the whole session record back and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, id string, sess *model.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(id), raw, s.ttl).Err()
}

// Delete clears a session at logout. Deleting an unknown id is a no-op.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err()
}

func key(id string) string { return "session:" + id }
