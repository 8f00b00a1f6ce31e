package auth

import (
	"net/http"
	"strings"

	"gamelist/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const usernameKey = "username"

// Username returns the caller identity set by one of the auth middlewares.
func Username(c *gin.Context) (string, bool) {
	value, ok := c.Get(usernameKey)
	if !ok {
		return "", false
	}
	username, ok := value.(string)
	return username, ok && username != ""
}

// Middleware creates a gin middleware that rejects requests without a valid
// bearer token. The credential is the second whitespace-separated token of
// the Authorization header.
func Middleware(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authenticated user"})
			return
		}

		username, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authenticated user"})
			return
		}

		c.Set(usernameKey, username)
		c.Next()
	}
}
