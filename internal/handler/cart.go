package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/cart"
	"github.com/iliyamo/online-market/internal/middleware"
	"github.com/iliyamo/online-market/internal/model"
	"github.com/iliyamo/online-market/internal/repository"
	"github.com/iliyamo/online-market/internal/session"
)

// CartHandler implements the session-backed cart endpoints. Every
// mutation reads the cart from the resolved session, applies exactly one
// transition and writes the whole cart back to the session store.
type CartHandler struct {
	Products ProductStore
	Sessions session.Store
}

func NewCartHandler(p ProductStore, s session.Store) *CartHandler {
	return &CartHandler{Products: p, Sessions: s}
}

// AddToCart handles GET /add-to-cart/:id. The product must exist in the
// catalog; its title, price and image are snapshotted into the new line
// item. Adding an already carted product only raises its quantity.
func (h *CartHandler) AddToCart(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.String(http.StatusNotFound, "Product not found!")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load product failed"})
	}

	sess.Cart = cart.Add(sess.Cart, p)
	return h.saveAndRedirect(c, sess)
}

// IncrementItem handles GET /increment/:id. Incrementing a product that
// is not in the cart is a defined no-op.
func (h *CartHandler) IncrementItem(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	sess.Cart = cart.Increment(sess.Cart, c.Param("id"))
	return h.saveAndRedirect(c, sess)
}

// DecrementItem handles GET /decrement/:id. An item that reaches zero is
// removed from the cart; an absent product is a no-op.
func (h *CartHandler) DecrementItem(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	sess.Cart = cart.Decrement(sess.Cart, c.Param("id"))
	return h.saveAndRedirect(c, sess)
}

// RemoveFromCart handles GET /remove-from-cart/:id.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	sess.Cart = cart.Remove(sess.Cart, c.Param("id"))
	return h.saveAndRedirect(c, sess)
}

// ViewCart handles GET /cart. The total is recomputed from the line
// items on every view and never stored anywhere.
func (h *CartHandler) ViewCart(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	items := sess.Cart
	if items == nil {
		items = []model.CartItem{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
		"total": cart.Total(items),
	})
}

// saveAndRedirect writes the mutated session back and sends the browser
// to the cart page.
func (h *CartHandler) saveAndRedirect(c echo.Context, sess *model.Session) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Sessions.Save(ctx, middleware.SessionIDFrom(c), sess); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save cart failed"})
	}
	return c.Redirect(http.StatusFound, "/cart")
}
