package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/middleware"
	"github.com/iliyamo/online-market/internal/model"
)

// ProfileHandler serves and updates the signed-in user's profile.
type ProfileHandler struct {
	Users     UserStore
	UploadDir string
}

func NewProfileHandler(u UserStore, uploadDir string) *ProfileHandler {
	return &ProfileHandler{Users: u, UploadDir: uploadDir}
}

// Profile handles GET /profile.
func (h *ProfileHandler) Profile(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByEmail(ctx, sess.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load profile failed"})
	}
	if u == nil {
		// The account was deleted while the session was still alive.
		return c.String(http.StatusNotFound, "User not found!")
	}
	return c.JSON(http.StatusOK, u)
}

// UpdateProfile handles POST /profile: address, phone and bio form
// fields plus an optional profile picture upload.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	picture, err := saveUpload(c, "picture", h.UploadDir)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save picture failed"})
	}

	p := model.Profile{
		Address: strings.TrimSpace(c.FormValue("address")),
		Phone:   strings.TrimSpace(c.FormValue("phone")),
		Bio:     strings.TrimSpace(c.FormValue("bio")),
		Picture: picture, // empty keeps the current picture
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.UpdateProfile(ctx, sess.Email, p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update profile failed"})
	}
	return c.Redirect(http.StatusSeeOther, "/profile")
}
