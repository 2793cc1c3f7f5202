package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendora/storefront-api/models"
	"github.com/trendora/storefront-api/session"
)

type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// Signup creates a provider identity and syncs it with the backend registry.
//
// POST /auth/signup
func Signup(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		sess, err := sessions.Signup(c.Request.Context(), input.Email, input.Password, input.Name)
		if err != nil {
			respondAuthError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sessionView(sess))
	}
}

// POST /auth/login
func Login(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		sess, err := sessions.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			respondAuthError(c, err)
			return
		}
		c.JSON(http.StatusOK, sessionView(sess))
	}
}

// GoogleLogin completes the provider's social flow with the ID token the
// popup produced.
//
// POST /auth/google
func GoogleLogin(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GoogleLoginInput
		if err := c.ShouldBindJSON(&input); err != nil || input.IDToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		sess, err := sessions.LoginWithGoogle(c.Request.Context(), input.IDToken)
		if err != nil {
			respondAuthError(c, err)
			return
		}
		c.JSON(http.StatusOK, sessionView(sess))
	}
}

// POST /auth/logout
func Logout(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GetSession reports the current identity and whether the store has
// resolved its first auth state; callers should not render
// identity-dependent UI before ready is true.
//
// GET /auth/session
func GetSession(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready": sessions.Ready(),
			"user":  sessionView(sessions.Current()),
		})
	}
}

// sessionView hides the credential tokens from API responses.
func sessionView(sess *models.Session) gin.H {
	if sess == nil {
		return nil
	}
	return gin.H{"uid": sess.UID, "name": sess.Name, "email": sess.Email}
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrAccountBlocked):
		c.JSON(http.StatusForbidden, gin.H{"error": "Your account has been blocked."})
	case errors.Is(err, models.ErrAuthFailed):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Login is unavailable right now, try again later"})
	}
}
