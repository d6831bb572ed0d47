package middleware

import (
	"github.com/catalogico/storefront/pkg/config"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie name of the shopper session
	SessionName = "storefront_session"

	sessionContextKey = "session"
)

// NewSessionStore builds the cookie store backing shopper sessions
func NewSessionStore(cfg *config.SessionConfig) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.MaxAge(cfg.MaxAge)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	return store
}

// SessionMiddleware loads the shopper session and attaches it to the context.
// Handlers that mutate the session must save it before responding.
func SessionMiddleware(store sessions.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get never fails to return a session; a bad cookie yields a fresh one
			sess, _ := store.Get(c.Request(), SessionName)
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// CurrentSession returns the shopper session for this request
func CurrentSession(c echo.Context) *sessions.Session {
	sess, ok := c.Get(sessionContextKey).(*sessions.Session)
	if !ok {
		return nil
	}
	return sess
}

// SaveSession flushes session mutations to the response cookie
func SaveSession(c echo.Context, sess *sessions.Session) error {
	return sess.Save(c.Request(), c.Response())
}
