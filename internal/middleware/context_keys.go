package middleware

import (
	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID.
const (
	userIDKey      = contextKey("userID")
	currentUserKey = contextKey("currentUser")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}

	// check in the request context as well
	if c.Request != nil {
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
			return userID, true
		}
	}
	return "", false
}

// GetCurrentUser returns the user loaded by LoadCurrentUser, or nil.
func GetCurrentUser(c *gin.Context) *domain.User {
	v, exists := c.Get(string(currentUserKey))
	if !exists {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
