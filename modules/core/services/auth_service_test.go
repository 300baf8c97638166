package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swrzee/console/modules/core/infrastructure/api"
	"github.com/swrzee/console/modules/core/services"
	"github.com/swrzee/console/pkg/configuration"
	"github.com/swrzee/console/pkg/eventbus"
	"github.com/swrzee/console/pkg/logging"
)

func newAuthService(t *testing.T, handler http.HandlerFunc) (*services.AuthService, services.SessionStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, 5*time.Second)
	store := services.NewMemorySessionStore()
	publisher := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))
	publisher.Subscribe(func(e *services.SessionCreatedEvent) {})
	publisher.Subscribe(func(e *services.SessionDestroyedEvent) {})
	return services.NewAuthService(client, store, publisher), store
}

func loginOK(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(`{
		"success": true,
		"message": "Login successful",
		"data": {
			"user": {"_id": "u1", "userId": "ADMIN001", "firstName": "Ada", "lastName": "L", "email": "ada@example.com", "role": "admin"},
			"tokens": {"accessToken": "token-a", "refreshToken": "token-r"}
		}
	}`))
}

func TestAuthService_LoginCreatesSession(t *testing.T) {
	svc, store := newAuthService(t, loginOK)

	sess, err := svc.Login(context.Background(), "ada@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	assert.Equal(t, "token-a", sess.Tokens.AccessToken)
	assert.Equal(t, "admin", sess.Profile.Role)

	stored, err := store.Read(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Tokens, stored.Tokens)
}

func TestAuthService_LoginWithoutAccessToken(t *testing.T) {
	svc, _ := newAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": {"user": {"_id": "u1"}, "tokens": {"accessToken": ""}}}`))
	})

	_, err := svc.Login(context.Background(), "ada@example.com", "secret123")
	require.Error(t, err)
}

func TestAuthService_LoginFailurePropagatesMessage(t *testing.T) {
	svc, _ := newAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success": false, "message": "Invalid credentials"}`))
	})

	_, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)
	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestAuthService_AuthorizeAndLogout(t *testing.T) {
	svc, _ := newAuthService(t, loginOK)
	ctx := context.Background()

	sess, err := svc.Login(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)

	got, err := svc.Authorize(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Profile.Email, got.Profile.Email)

	require.NoError(t, svc.Logout(ctx, sess.Token))
	_, err = svc.Authorize(ctx, sess.Token)
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}

func TestAuthService_CookiesMirrorAccessToken(t *testing.T) {
	svc, _ := newAuthService(t, loginOK)
	conf := configuration.Use()

	sess, err := svc.Login(context.Background(), "ada@example.com", "secret123")
	require.NoError(t, err)

	cookies := svc.Cookies(sess)
	require.Len(t, cookies, 2)

	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
	}
	sid := byName[conf.SidCookieKey]
	require.NotNil(t, sid)
	assert.Equal(t, sess.Token, sid.Value)
	assert.True(t, sid.HttpOnly)

	mirror := byName[conf.AccessTokenCookieKey]
	require.NotNil(t, mirror)
	assert.Equal(t, "token-a", mirror.Value)
	assert.WithinDuration(t, sess.ExpiresAt, mirror.Expires, time.Second)
}

func TestAuthService_ClearCookiesMatchSetScope(t *testing.T) {
	svc, _ := newAuthService(t, loginOK)
	conf := configuration.Use()

	prevEnv := conf.GoAppEnvironment
	prevDomain := conf.Domain
	conf.GoAppEnvironment = configuration.Production
	conf.Domain = "console.example.com"
	t.Cleanup(func() {
		conf.GoAppEnvironment = prevEnv
		conf.Domain = prevDomain
	})

	sess, err := svc.Login(context.Background(), "ada@example.com", "secret123")
	require.NoError(t, err)

	set := map[string]*http.Cookie{}
	for _, c := range svc.Cookies(sess) {
		set[c.Name] = c
	}
	cleared := map[string]*http.Cookie{}
	for _, c := range svc.ClearCookies() {
		cleared[c.Name] = c
	}
	require.Len(t, cleared, 2)

	for _, name := range []string{conf.SidCookieKey, conf.AccessTokenCookieKey} {
		require.NotNil(t, set[name])
		require.NotNil(t, cleared[name])
		// Browsers only drop a cookie when the deletion carries the
		// same Domain and Path it was set under.
		assert.Equal(t, set[name].Domain, cleared[name].Domain, name)
		assert.Equal(t, set[name].Path, cleared[name].Path, name)
		assert.Equal(t, set[name].Secure, cleared[name].Secure, name)
		assert.Equal(t, -1, cleared[name].MaxAge, name)
	}
}
