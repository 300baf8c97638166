package composables

import (
	"context"
	"errors"

	"github.com/swrzee/console/modules/core/domain/entities/session"
	"github.com/swrzee/console/pkg/constants"
)

var (
	ErrNoSessionFound = errors.New("no session found")
)

// WithSession returns a new context with the login session attached.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, constants.SessionKey, sess)
}

// UseSession returns the login session attached by the auth middleware.
func UseSession(ctx context.Context) (*session.Session, error) {
	sess, ok := ctx.Value(constants.SessionKey).(*session.Session)
	if !ok {
		return nil, ErrNoSessionFound
	}
	return sess, nil
}

// MustUseSession is UseSession for handlers that run strictly behind the
// auth middleware.
func MustUseSession(ctx context.Context) *session.Session {
	sess, err := UseSession(ctx)
	if err != nil {
		panic(err)
	}
	return sess
}

// UseAccessToken returns the bearer token for upstream API calls.
func UseAccessToken(ctx context.Context) (string, error) {
	sess, err := UseSession(ctx)
	if err != nil {
		return "", err
	}
	return sess.Tokens.AccessToken, nil
}
