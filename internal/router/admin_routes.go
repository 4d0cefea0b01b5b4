package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/access"
	"github.com/iliyamo/online-market/internal/handler"
	"github.com/iliyamo/online-market/internal/middleware"
)

// RegisterAdmin registers the admin-only routes: the panel, the pending
// seller list, seller approval and cascade user deletion.
func RegisterAdmin(e *echo.Echo, admin *handler.AdminHandler) {
	e.GET("/admin", admin.Dashboard, middleware.Require(access.OpAdminPanel))
	e.GET("/admin/sellers", admin.PendingSellers, middleware.Require(access.OpAdminPanel))
	e.GET("/approve-seller/:id", admin.ApproveSeller, middleware.Require(access.OpApproveSeller))
	e.GET("/delete-user/:id", admin.DeleteUser, middleware.Require(access.OpDeleteUser))
}
