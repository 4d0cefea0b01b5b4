package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/repository"
)

// AdminHandler implements the admin panel: full visibility into the
// catalog and user base, seller approval and user deletion.
type AdminHandler struct {
	Users    UserStore
	Products ProductStore
}

func NewAdminHandler(u UserStore, p ProductStore) *AdminHandler {
	return &AdminHandler{Users: u, Products: p}
}

// Dashboard handles GET /admin: all products, all users and the sellers
// still waiting for approval.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	products, err := h.Products.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load products failed"})
	}
	users, err := h.Users.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load users failed"})
	}
	pending, err := h.Users.ListPendingSellers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load pending sellers failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"products":        products,
		"users":           users,
		"pending_sellers": pending,
	})
}

// PendingSellers handles GET /admin/sellers.
func (h *AdminHandler) PendingSellers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pending, err := h.Users.ListPendingSellers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load pending sellers failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"pending_sellers": pending})
}

// ApproveSeller handles GET /approve-seller/:id. Approval is idempotent.
func (h *AdminHandler) ApproveSeller(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.SetApproved(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.String(http.StatusNotFound, "User not found!")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "approve seller failed"})
	}
	return c.Redirect(http.StatusFound, "/admin/sellers")
}

// DeleteUser handles GET /delete-user/:id. Deleting a seller cascades to
// every product owned by their email; deleting anyone else removes only
// the user record.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.DeleteCascade(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.String(http.StatusNotFound, "User not found!")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete user failed"})
	}
	return c.Redirect(http.StatusFound, "/admin")
}
