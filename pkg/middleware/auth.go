package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/swrzee/console/modules/core/domain/entities/session"
	"github.com/swrzee/console/pkg/composables"
	"github.com/swrzee/console/pkg/configuration"
)

// SessionAuthorizer resolves a sid cookie value into a live session.
type SessionAuthorizer interface {
	Authorize(ctx context.Context, token string) (*session.Session, error)
}

// expireCookie builds a deletion cookie scoped exactly like the
// cookies AuthService sets, so production browsers actually drop them.
func expireCookie(conf *configuration.Configuration, name string) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	}
	if conf.GoAppEnvironment == configuration.Production {
		c.Domain = conf.Domain
		c.Secure = true
	}
	return c
}

// Authorize resolves the sid cookie into a session and attaches it to
// the request context. Requests without a valid session pass through
// unauthenticated; gating is left to RedirectNotAuthenticated.
func Authorize(auth SessionAuthorizer) mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := r.Cookie(conf.SidCookieKey)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			sess, err := auth.Authorize(r.Context(), token.Value)
			if err != nil {
				// Stale cookie, clear it so the mirror gate stops
				// treating the browser as logged in.
				http.SetCookie(w, expireCookie(conf, conf.SidCookieKey))
				http.SetCookie(w, expireCookie(conf, conf.AccessTokenCookieKey))
				next.ServeHTTP(w, r)
				return
			}
			ctx := composables.WithSession(r.Context(), sess)
			if params, ok := composables.UseParams(ctx); ok {
				params.Authenticated = true
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RedirectNotAuthenticated sends anonymous requests to the login page,
// preserving the requested path so login can return the user there.
func RedirectNotAuthenticated() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := composables.UseSession(r.Context()); err != nil {
				next_ := r.URL.Path
				if r.URL.RawQuery != "" {
					next_ += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, "/login?next="+url.QueryEscape(next_), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RedirectAuthenticated keeps logged-in users off the public pages. The
// gate reads the access token mirror cookie; a mirror cookie without a
// live session is stale and gets cleared instead of redirected, otherwise
// the login page and the dashboard would bounce the browser forever.
func RedirectAuthenticated() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(conf.AccessTokenCookieKey); err == nil && c.Value != "" {
				if _, err := composables.UseSession(r.Context()); err == nil {
					http.Redirect(w, r, "/dashboard", http.StatusFound)
					return
				}
				http.SetCookie(w, expireCookie(conf, conf.AccessTokenCookieKey))
			}
			next.ServeHTTP(w, r)
		})
	}
}
