package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/trendora/storefront-api/controllers/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, s Services) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authControllers.Signup(s.Sessions))
		authGroup.POST("/login", authControllers.Login(s.Sessions))
		authGroup.POST("/google", authControllers.GoogleLogin(s.Sessions))
		authGroup.POST("/logout", authControllers.Logout(s.Sessions))
		authGroup.GET("/session", authControllers.GetSession(s.Sessions))
	}
}
