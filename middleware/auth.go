package middleware

import (
	"net/http"
	"strings"

	"Santa/models"
	"Santa/utils/apperr"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

type TokenVerifier interface {
	Verify(raw string) (models.ID, error)
}

// AuthRequired checks the bearer token and stores the caller's id in the context.
func AuthRequired(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"data": nil, "error": "Unauthorized"})
			return
		}
		uid, err := tokens.Verify(strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"data": nil, "error": apperr.Message(err)})
			return
		}
		c.Set(userIDKey, uid)
		c.Next()
	}
}

// UserID returns the authenticated caller, empty when AuthRequired did not run.
func UserID(c *gin.Context) models.ID {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(models.ID); ok {
			return id
		}
	}
	return ""
}
