package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/trendora/storefront-api/session"
)

// RequireAdmin guards console routes with the stored admin session. The
// token is opaque to us — only the backend can verify it — but when it
// happens to be a JWT we peek at the exp claim without checking the
// signature and drop tokens that are provably expired instead of proxying
// doomed requests.
func RequireAdmin(admins *session.AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := admins.Current()
		if current == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin login required"})
			c.Abort()
			return
		}

		if tokenExpired(current.Token) {
			admins.Clear()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin session expired, login again"})
			c.Abort()
			return
		}

		c.Set("admin_token", current.Token)
		c.Next()
	}
}

func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		// Not a JWT; trust the backend to judge it.
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
