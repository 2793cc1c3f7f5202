package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendora/storefront-api/identity"
	"github.com/trendora/storefront-api/session"
)

// RequireSession guards customer routes. The active session's ID token is
// verified against the identity provider when a verifier is configured;
// without credentials only presence is checked (local development).
func RequireSession(sessions *session.Store, verifier *identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := sessions.Current()
		if current == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue"})
			c.Abort()
			return
		}

		if verifier != nil {
			token, err := verifier.Verify(c.Request.Context(), current.IDToken)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
				c.Abort()
				return
			}
			c.Set("user_id", token.UID)
		} else {
			c.Set("user_id", current.UID)
		}

		c.Next()
	}
}
