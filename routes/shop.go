package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/trendora/storefront-api/controllers/cart"
	shopControllers "github.com/trendora/storefront-api/controllers/shop"
	"github.com/trendora/storefront-api/middleware"
)

// SetupShopRoutes registers the storefront browsing and cart endpoints.
// Browsing is public; the cart requires an active session.
func SetupShopRoutes(r *gin.Engine, s Services) {
	shopGroup := r.Group("/shop")
	{
		shopGroup.GET("/products", shopControllers.GetShop(s.API))
		shopGroup.GET("/products/:id", shopControllers.GetProductDetails(s.API, s.Checkout))
	}

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireSession(s.Sessions, s.Verifier))
	{
		cartGroup.GET("", cartControllers.GetCart(s.Cart))
		cartGroup.POST("", cartControllers.AddCartItem(s.Cart, s.API))
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(s.Cart))
		cartGroup.DELETE("", cartControllers.ClearCart(s.Cart))
		cartGroup.POST("/checkout", cartControllers.Checkout(s.Cart, s.Checkout))
	}
}
