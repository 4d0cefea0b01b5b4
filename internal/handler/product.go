package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/middleware"
	"github.com/iliyamo/online-market/internal/model"
	"github.com/iliyamo/online-market/internal/repository"
)

// ProductHandler implements the listing management endpoints. Any
// authenticated user may manage listings; sellers additionally need
// approval before adding products, which the access gate enforces.
type ProductHandler struct {
	Products  ProductStore
	UploadDir string
}

func NewProductHandler(p ProductStore, uploadDir string) *ProductHandler {
	return &ProductHandler{Products: p, UploadDir: uploadDir}
}

// AddProductForm serves the view model for the add-product page.
func (h *ProductHandler) AddProductForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"page": "add-product"})
}

// AddProduct handles POST /add-product. The form carries title, price,
// description and a multipart image file.
func (h *ProductHandler) AddProduct(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.String(http.StatusBadRequest, "Title is required!")
	}
	price, err := parsePrice(c.FormValue("price"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid price!")
	}

	image, err := saveUpload(c, "image", h.UploadDir)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save image failed"})
	}
	if image == "" {
		return c.String(http.StatusBadRequest, "Image file is required!")
	}

	p := &model.Product{
		Title:       title,
		Price:       price,
		Image:       image,
		Description: c.FormValue("description"),
		OwnerEmail:  sess.Email,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Products.Create(ctx, p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create product failed"})
	}
	return c.Redirect(http.StatusSeeOther, listingPageFor(sess))
}

// EditProductForm handles GET /edit-product/:id and returns the product
// to prefill the edit page.
func (h *ProductHandler) EditProductForm(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.String(http.StatusNotFound, "Product not found!")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load product failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// EditProduct handles POST /edit-product/:id. The image field is a plain
// reference here; edits do not re-upload the file, and an empty value
// keeps the current image.
func (h *ProductHandler) EditProduct(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	id := c.Param("id")

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.String(http.StatusBadRequest, "Title is required!")
	}
	price, err := parsePrice(c.FormValue("price"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid price!")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	existing, err := h.Products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.String(http.StatusNotFound, "Product not found!")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load product failed"})
	}

	image := strings.TrimSpace(c.FormValue("image"))
	if image == "" {
		image = existing.Image
	}

	upd := model.ProductUpdate{
		Title:       title,
		Price:       price,
		Image:       image,
		Description: c.FormValue("description"),
	}
	if err := h.Products.Update(ctx, id, upd); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.String(http.StatusNotFound, "Product not found!")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update product failed"})
	}
	return c.Redirect(http.StatusSeeOther, listingPageFor(sess))
}

// DeleteProduct handles GET /delete-product/:id.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Products.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.String(http.StatusNotFound, "Product not found!")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete product failed"})
	}
	return c.Redirect(http.StatusFound, listingPageFor(sess))
}

// SellerDashboard handles GET /seller and lists the seller's own
// products. The access gate has already verified role and approval.
func (h *ProductHandler) SellerDashboard(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	products, err := h.Products.ListByOwner(ctx, sess.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load products failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"name":     sess.FirstName,
		"products": products,
	})
}

// parsePrice coerces the price form field to a non-negative finite
// number. ParseFloat accepts "NaN" and "Inf" spellings, which would
// poison every cart total downstream, so those are rejected too.
func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, repository.ErrInvalidInput
	}
	return price, nil
}

// listingPageFor picks where a mutation redirects to afterwards: admins
// land on the admin panel, approved sellers on their dashboard, buyers
// on the catalog.
func listingPageFor(sess *model.Session) string {
	switch sess.Role {
	case model.RoleAdmin:
		return "/admin"
	case model.RoleSeller:
		return "/seller"
	default:
		return "/"
	}
}
