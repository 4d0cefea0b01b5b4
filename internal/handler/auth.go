package handler

import (
	"context"       // provides context with cancellation for store calls
	"crypto/subtle" // constant-time comparison for the admin code
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/online-market/internal/config"
	"github.com/iliyamo/online-market/internal/middleware"
	"github.com/iliyamo/online-market/internal/model"
	"github.com/iliyamo/online-market/internal/queue"
	"github.com/iliyamo/online-market/internal/repository"
	"github.com/iliyamo/online-market/internal/service"
	"github.com/iliyamo/online-market/internal/session"
	"github.com/iliyamo/online-market/internal/utils"
)

// AuthHandler bundles dependencies for signup, login and logout.
type AuthHandler struct {
	Cfg      config.Config
	Users    UserStore
	Sessions session.Store

	// PublishRegistered is called after a successful signup. It defaults
	// to the RabbitMQ publisher and is overridable in tests.
	PublishRegistered func(ctx context.Context, evt queue.UserRegisteredEvent) error
}

func NewAuthHandler(cfg config.Config, u UserStore, s session.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Sessions: s, PublishRegistered: service.PublishUserRegistered}
}

// SignupForm serves the view model for the signup page.
func (h *AuthHandler) SignupForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"page":  "signup",
		"roles": []string{model.RoleBuyer, model.RoleSeller, model.RoleAdmin},
	})
}

// Signup handles POST /api/signup. The form carries firstName, lastName,
// email, password, an optional role and, for admin signups, admin_code.
// Sellers start unapproved; admins must present the shared code.
func (h *AuthHandler) Signup(c echo.Context) error {
	firstName := strings.TrimSpace(c.FormValue("firstName"))
	lastName := strings.TrimSpace(c.FormValue("lastName"))
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.String(http.StatusBadRequest, "Email and password are required!")
	}

	role := strings.ToLower(strings.TrimSpace(c.FormValue("role")))
	switch role {
	case "":
		role = model.RoleBuyer
	case model.RoleBuyer, model.RoleSeller:
	case model.RoleAdmin:
		code := c.FormValue("admin_code")
		if subtle.ConstantTimeCompare([]byte(code), []byte(h.Cfg.AdminCode)) != 1 {
			return c.String(http.StatusBadRequest, "Invalid admin code!")
		}
	default:
		return c.String(http.StatusBadRequest, "Invalid role!")
	}

	u := &model.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      role,
		Approved:  role != model.RoleSeller, // sellers wait for admin approval
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.Create(ctx, u, password, h.Cfg.BcryptCost); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.String(http.StatusConflict, "Email already registered!")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	// Signup events feed the registration log; a broker outage must not
	// fail the signup itself.
	if h.PublishRegistered != nil {
		_ = h.PublishRegistered(ctx, queue.UserRegisteredEvent{
			UserID:       u.ID.Hex(),
			Email:        u.Email,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			Role:         u.Role,
			RegisteredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	if err := h.startSession(c, u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create session failed"})
	}
	return c.Redirect(http.StatusSeeOther, homeFor(role))
}

// LoginForm serves the view model for the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"page": "login"})
}

// Login handles POST /api/login. Unknown email and wrong password are
// reported identically. Unapproved sellers may log in; the access gate
// blocks their seller surfaces separately.
func (h *AuthHandler) Login(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.String(http.StatusBadRequest, "Email and password are required!")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			return c.String(http.StatusUnauthorized, "Invalid email or password!")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if err := h.startSession(c, u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create session failed"})
	}
	return c.Redirect(http.StatusSeeOther, homeFor(u.Role))
}

// Logout handles POST /api/logout: the session record is deleted and
// the cookie expired. Logging out while logged out is harmless.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid := middleware.SessionIDFrom(c); sid != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		_ = h.Sessions.Delete(ctx, sid)
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusSeeOther, "/api/login")
}

// startSession creates the server-side session record and sets the
// signed cookie naming it.
func (h *AuthHandler) startSession(c echo.Context, u *model.User) error {
	sess := &model.Session{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Approved:  u.Approved,
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sid, err := h.Sessions.Create(ctx, sess)
	if err != nil {
		return err
	}
	ttl := time.Duration(h.Cfg.SessionTTLHours) * time.Hour
	token, err := utils.NewSessionToken(h.Cfg.SessionSecret, sid, ttl)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// homeFor picks the landing page after signup or login.
func homeFor(role string) string {
	if role == model.RoleAdmin {
		return "/admin"
	}
	return "/"
}
