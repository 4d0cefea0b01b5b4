package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/access"
	"github.com/iliyamo/online-market/internal/handler"
	"github.com/iliyamo/online-market/internal/middleware"
)

// RegisterShop registers the catalog, listing management, cart and
// profile routes. Each route names its operation explicitly so the gate
// in internal/access stays the single authority on who may do what.
func RegisterShop(e *echo.Echo, catalog *handler.CatalogHandler, products *handler.ProductHandler, carts *handler.CartHandler, profile *handler.ProfileHandler) {
	e.GET("/", catalog.Home, middleware.Require(access.OpBrowseCatalog))

	// Listing management. Open to every signed-in user, marketplace
	// style; unapproved sellers are stopped at OpAddProduct.
	e.GET("/add-product", products.AddProductForm, middleware.Require(access.OpAddProduct))
	e.POST("/add-product", products.AddProduct, middleware.Require(access.OpAddProduct))
	e.GET("/edit-product/:id", products.EditProductForm, middleware.Require(access.OpEditProduct))
	e.POST("/edit-product/:id", products.EditProduct, middleware.Require(access.OpEditProduct))
	e.GET("/delete-product/:id", products.DeleteProduct, middleware.Require(access.OpDeleteProduct))
	e.GET("/seller", products.SellerDashboard, middleware.Require(access.OpSellerDashboard))

	// Session cart.
	e.GET("/cart", carts.ViewCart, middleware.Require(access.OpViewCart))
	e.GET("/add-to-cart/:id", carts.AddToCart, middleware.Require(access.OpModifyCart))
	e.GET("/increment/:id", carts.IncrementItem, middleware.Require(access.OpModifyCart))
	e.GET("/decrement/:id", carts.DecrementItem, middleware.Require(access.OpModifyCart))
	e.GET("/remove-from-cart/:id", carts.RemoveFromCart, middleware.Require(access.OpModifyCart))

	// Profile.
	e.GET("/profile", profile.Profile, middleware.Require(access.OpEditProfile))
	e.POST("/profile", profile.UpdateProfile, middleware.Require(access.OpEditProfile))
}
