package auth

import (
	"strings"

	"gamelist/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// OptionalMiddleware inspects for a token and sets the caller identity if
// present and valid, but does not fail if the token is missing or invalid.
// Read paths use it so anonymous callers still see public lists.
func OptionalMiddleware(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if parts := strings.Fields(c.GetHeader("Authorization")); len(parts) >= 2 {
			if username, err := tokens.Parse(parts[1]); err == nil {
				c.Set(usernameKey, username)
			}
		}
		c.Next()
	}
}
