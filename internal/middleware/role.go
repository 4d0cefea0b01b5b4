package middleware // middleware provides shared request processing for handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/access"
)

// Require returns a middleware that evaluates the access gate for one
// operation against the resolved session. It assumes ResolveSession ran
// earlier in the chain.
//
// Denials map to user-visible outcomes: anonymous requests are
// redirected to the login page, unapproved sellers get the explicit
// pending-approval message, and everything else is a plain forbidden.
func Require(op access.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := access.Check(SessionFrom(c), op)
			switch {
			case err == nil:
				return next(c)
			case errors.Is(err, access.ErrUnauthenticated):
				return c.Redirect(http.StatusFound, "/api/login")
			case errors.Is(err, access.ErrPendingApproval):
				return c.String(http.StatusForbidden, "Your seller account is pending admin approval.")
			default:
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
		}
	}
}
