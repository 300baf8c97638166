package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/swrzee/console/modules/core/domain/entities/session"
	"github.com/swrzee/console/modules/core/infrastructure/api"
	"github.com/swrzee/console/pkg/composables"
	"github.com/swrzee/console/pkg/configuration"
	"github.com/swrzee/console/pkg/eventbus"
)

type SessionCreatedEvent struct {
	Session *session.Session
}

type SessionDestroyedEvent struct {
	Token string
}

type AuthService struct {
	client    *api.Client
	sessions  SessionStore
	publisher eventbus.EventBus
}

func NewAuthService(client *api.Client, sessions SessionStore, publisher eventbus.EventBus) *AuthService {
	return &AuthService{
		client:    client,
		sessions:  sessions,
		publisher: publisher,
	}
}

// Login exchanges credentials with the upstream and creates a local
// session wrapping the returned token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	data, err := s.client.Login(ctx, &api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	// A login payload without an access token is no login at all.
	if data.Tokens.AccessToken == "" {
		return nil, &api.Error{Status: http.StatusBadGateway, Message: api.GenericErrorMessage}
	}

	logger := configuration.Use().Logger()

	ip, ok := composables.UseIP(ctx)
	if !ok {
		ip = "0.0.0.0"
	}
	userAgent, ok := composables.UseUserAgent(ctx)
	if !ok {
		userAgent = "Unknown"
	}

	token, err := newSessionToken()
	if err != nil {
		logger.Errorf("Failed to generate session token: %v", err)
		return nil, err
	}

	dto := &session.CreateDTO{
		Token: token,
		Tokens: session.Tokens{
			AccessToken:  data.Tokens.AccessToken,
			RefreshToken: data.Tokens.RefreshToken,
		},
		Profile: session.Profile{
			ID:          data.User.ID,
			UserID:      data.User.UserID,
			FirstName:   data.User.FirstName,
			LastName:    data.User.LastName,
			Email:       data.User.Email,
			PhoneNumber: data.User.PhoneNumber,
			Role:        data.User.Role,
		},
		IP:        ip,
		UserAgent: userAgent,
	}
	sess := dto.ToEntity(time.Now(), configuration.Use().Session.Duration)
	if err := s.sessions.Store(ctx, sess); err != nil {
		logger.Errorf("Failed to store session: %v", err)
		return nil, err
	}
	s.publisher.Publish(&SessionCreatedEvent{Session: sess})
	return sess, nil
}

// cookieScope returns the Domain/Secure attributes shared by the auth
// cookies. Deletion cookies must carry the same scope or the browser
// keeps the originals.
func cookieScope(conf *configuration.Configuration) (domain string, secure bool) {
	if conf.GoAppEnvironment == configuration.Production {
		return conf.Domain, true
	}
	return "", false
}

// Cookies returns the sid cookie plus the access token mirror the
// navigation gate reads. Both expire with the session.
func (s *AuthService) Cookies(sess *session.Session) []*http.Cookie {
	conf := configuration.Use()
	domain, secure := cookieScope(conf)
	return []*http.Cookie{
		{
			Name:     conf.SidCookieKey,
			Value:    sess.Token,
			Expires:  sess.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   secure,
			Domain:   domain,
			Path:     "/",
		},
		{
			Name:     conf.AccessTokenCookieKey,
			Value:    sess.Tokens.AccessToken,
			Expires:  sess.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   secure,
			Domain:   domain,
			Path:     "/",
		},
	}
}

// ClearCookies expires both auth cookies with the same scope they were
// set under.
func (s *AuthService) ClearCookies() []*http.Cookie {
	conf := configuration.Use()
	domain, secure := cookieScope(conf)
	return []*http.Cookie{
		{
			Name:     conf.SidCookieKey,
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   secure,
			Domain:   domain,
			Path:     "/",
		},
		{
			Name:     conf.AccessTokenCookieKey,
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   secure,
			Domain:   domain,
			Path:     "/",
		},
	}
}

func (s *AuthService) Authorize(ctx context.Context, token string) (*session.Session, error) {
	sess, err := s.sessions.Read(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.Expired(time.Now()) {
		_ = s.sessions.Clear(ctx, token)
		return nil, ErrSessionNotFound
	}
	// The session only counts while it still carries an access token.
	if sess.Tokens.AccessToken == "" {
		_ = s.sessions.Clear(ctx, token)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Clear(ctx, token); err != nil {
		return err
	}
	s.publisher.Publish(&SessionDestroyedEvent{Token: token})
	return nil
}

func (s *AuthService) RegisterSuperAdmin(ctx context.Context, req *api.RegisterSuperAdminRequest) error {
	return s.client.RegisterSuperAdmin(ctx, req)
}

func (s *AuthService) CreateAdmin(ctx context.Context, req *api.CreateAdminRequest) error {
	token, err := composables.UseAccessToken(ctx)
	if err != nil {
		return err
	}
	return s.client.CreateAdmin(ctx, token, req)
}

func newSessionToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
