package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/model"
	"github.com/iliyamo/online-market/internal/session"
	"github.com/iliyamo/online-market/internal/utils"
)

// CookieName is the name of the session cookie. Its value is a signed
// token carrying the session id, never the session state itself.
const CookieName = "market_session"

const (
	ctxSessionKey = "session"
	ctxSessionID  = "session_id"
)

// ResolveSession returns a middleware that turns the session cookie
// into a typed session record in the request context. It never rejects
// a request: a missing cookie, a bad signature or an expired record all
// simply leave the request anonymous, and the access gate decides what
// an anonymous request may do.
func ResolveSession(secret string, store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			sid, err := utils.ParseSessionToken(secret, cookie.Value)
			if err != nil {
				return next(c)
			}
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			sess, err := store.Get(ctx, sid)
			if err != nil {
				return next(c)
			}
			c.Set(ctxSessionKey, sess)
			c.Set(ctxSessionID, sid)
			return next(c)
		}
	}
}

// SessionFrom extracts the resolved session from the context, or nil
// for an anonymous request.
func SessionFrom(c echo.Context) *model.Session {
	if s, ok := c.Get(ctxSessionKey).(*model.Session); ok {
		return s
	}
	return nil
}

// SessionIDFrom extracts the resolved session id, or "" when anonymous.
func SessionIDFrom(c echo.Context) string {
	if id, ok := c.Get(ctxSessionID).(string); ok {
		return id
	}
	return ""
}

// SetSession places a session into the context. Exported for handler
// tests, which bypass ResolveSession.
func SetSession(c echo.Context, id string, sess *model.Session) {
	c.Set(ctxSessionKey, sess)
	c.Set(ctxSessionID, id)
}
