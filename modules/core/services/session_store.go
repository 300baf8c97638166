package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/swrzee/console/modules/core/domain/entities/session"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists login sessions keyed by their sid token.
type SessionStore interface {
	Store(ctx context.Context, sess *session.Session) error
	Read(ctx context.Context, token string) (*session.Session, error)
	Clear(ctx context.Context, token string) error
}

// ---- In-memory store ----

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]*session.Session)}
}

func (s *memorySessionStore) Store(_ context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

func (s *memorySessionStore) Read(_ context.Context, token string) (*session.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.Expired(time.Now()) {
		_ = s.Clear(context.Background(), token)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *memorySessionStore) Clear(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// ---- Redis store ----

const redisSessionPrefix = "session:"

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore connects to the given address. Expiry is
// delegated to redis via per-key TTL.
func NewRedisSessionStore(redisURL string) (SessionStore, error) {
	client := redis.NewClient(&redis.Options{Addr: redisURL})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}
	return &redisSessionStore{client: client}, nil
}

func (s *redisSessionStore) Store(ctx context.Context, sess *session.Session) error {
	blob, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, redisSessionPrefix+sess.Token, blob, ttl).Err()
}

func (s *redisSessionStore) Read(ctx context.Context, token string) (*session.Session, error) {
	blob, err := s.client.Get(ctx, redisSessionPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}
	var sess session.Session
	if err := json.Unmarshal(blob, &sess); err != nil {
		// A corrupt blob counts as absence, not a hard failure.
		_ = s.Clear(ctx, token)
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *redisSessionStore) Clear(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisSessionPrefix+token).Err()
}
