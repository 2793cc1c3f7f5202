package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trendora/storefront-api/apiclient"
	"github.com/trendora/storefront-api/cart"
	"github.com/trendora/storefront-api/checkout"
	streamControllers "github.com/trendora/storefront-api/controllers/stream"
	"github.com/trendora/storefront-api/identity"
	"github.com/trendora/storefront-api/session"
)

// Services are the dependency-injected stores and clients the handlers run
// on, constructed once in main.
type Services struct {
	API      *apiclient.Client
	Sessions *session.Store
	Admins   *session.AdminStore
	Cart     *cart.Store
	Checkout *checkout.Builder
	Verifier *identity.Verifier
	Hub      *streamControllers.Hub
}

// SetupRoutes is the single entry-point that wires up Auth, Shop/Cart, and
// Admin route groups.
func SetupRoutes(r *gin.Engine, s Services) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, s)

	// 2️⃣ Storefront routes (cart group session-guarded)
	SetupShopRoutes(r, s)

	// 3️⃣ Admin console routes (stored-admin-session-guarded)
	SetupAdminRoutes(r, s)

	// store change stream
	r.GET("/ws/updates", s.Hub.Handle)
}
