package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendora/storefront-api/apiclient"
	"github.com/trendora/storefront-api/models"
	"github.com/trendora/storefront-api/session"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges console credentials with the backend and stores the
// resulting admin session verbatim.
//
// POST /admin/login
func Login(api *apiclient.Client, admins *session.AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		sess, err := api.AdminLogin(c.Request.Context(), input.Username, input.Password)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrAccountBlocked) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Credentials"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Login is unavailable right now"})
			return
		}
		admins.Set(sess)
		c.JSON(http.StatusOK, gin.H{"username": sess.Username, "message": "Login successful"})
	}
}

// POST /admin/logout
func Logout(admins *session.AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		admins.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GetUsers lists the backend user registry.
//
// GET /admin/users
func GetUsers(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := api.Users(c.Request.Context(), c.GetString("admin_token"))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// BlockUser toggles the blocked flag on a registry record; a blocked
// customer is forced out at their next sync.
//
// PUT /admin/users/:id/block
func BlockUser(api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := api.BlockUser(c.Request.Context(), c.GetString("admin_token"), c.Param("id"))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User updated"})
	}
}
