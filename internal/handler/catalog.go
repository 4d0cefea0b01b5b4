package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/middleware"
)

// CatalogHandler serves the product listing on the home page.
type CatalogHandler struct {
	Products ProductStore
}

func NewCatalogHandler(p ProductStore) *CatalogHandler {
	return &CatalogHandler{Products: p}
}

// Home handles GET / and returns the catalog together with the visitor's
// display name. The access gate guarantees a session is present.
func (h *CatalogHandler) Home(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	products, err := h.Products.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load products failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"name":     sess.FirstName,
		"products": products,
	})
}
