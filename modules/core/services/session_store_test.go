package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swrzee/console/modules/core/domain/entities/session"
	"github.com/swrzee/console/modules/core/services"
)

func newSession(token string, ttl time.Duration) *session.Session {
	dto := &session.CreateDTO{
		Token: token,
		Tokens: session.Tokens{
			AccessToken:  "access-" + token,
			RefreshToken: "refresh-" + token,
		},
		Profile: session.Profile{
			ID:        "u1",
			UserID:    "ADMIN001",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Role:      "admin",
		},
		IP:        "127.0.0.1",
		UserAgent: "test",
	}
	return dto.ToEntity(time.Now(), ttl)
}

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	store := services.NewMemorySessionStore()
	ctx := context.Background()

	sess := newSession("tok-1", time.Hour)
	require.NoError(t, store.Store(ctx, sess))

	got, err := store.Read(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, sess.Profile, got.Profile)
	assert.Equal(t, sess.Tokens, got.Tokens)
}

func TestMemorySessionStore_ReadMissing(t *testing.T) {
	store := services.NewMemorySessionStore()
	_, err := store.Read(context.Background(), "nope")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}

func TestMemorySessionStore_ClearIsIdempotent(t *testing.T) {
	store := services.NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, newSession("tok-2", time.Hour)))
	require.NoError(t, store.Clear(ctx, "tok-2"))
	require.NoError(t, store.Clear(ctx, "tok-2"))

	_, err := store.Read(ctx, "tok-2")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}

func TestMemorySessionStore_ExpiredSessionIsGone(t *testing.T) {
	store := services.NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, newSession("tok-3", -time.Minute)))
	_, err := store.Read(ctx, "tok-3")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}
