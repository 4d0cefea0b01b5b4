package router // package router defines how HTTP routes are registered for the application

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/online-market/internal/access"
	"github.com/iliyamo/online-market/internal/handler"
	"github.com/iliyamo/online-market/internal/middleware"
)

// RegisterRoutes registers routes that do not require a session.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the signup, login and logout endpoints. Signup
// and login are reachable anonymously; the access gate still runs so
// the decision lives in one place. Login POSTs are rate limited per IP
// when a Redis client is available.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rdb *redis.Client) {
	limiter := middleware.LoginRateLimit(rdb, 10, time.Minute)

	g := e.Group("/api")
	g.GET("/signup", a.SignupForm, middleware.Require(access.OpSignup))
	g.POST("/signup", a.Signup, middleware.Require(access.OpSignup))
	g.GET("/login", a.LoginForm, middleware.Require(access.OpLogin))
	g.POST("/login", a.Login, middleware.Require(access.OpLogin), limiter)
	g.POST("/logout", a.Logout)
}
