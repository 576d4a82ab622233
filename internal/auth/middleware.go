package auth

import (
	"context"
	"net/http"
	"strings"

	"moodlink/backend/internal/domain"
	"moodlink/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// UserLoader resolves a token subject to a stored user record.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*domain.User, error)
}

// Middleware creates a gin middleware that requires a valid bearer token. The
// token's subject is resolved against the store and the resulting record
// (credential material excluded) is attached to the request context. Requests
// without a valid token are rejected before any handler runs; the store is
// never mutated here.
func Middleware(secret string, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		userID, err := jwt.ParseUserID(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user record attached by Middleware.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
