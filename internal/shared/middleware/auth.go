package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"template-backend/internal/shared/response"
	"template-backend/pkg/jwt"
)

// AuthMiddleware verifies the Bearer token on protected routes.
// Requests without usable credentials are rejected with 403 and a
// detail body; handlers behind the gate never produce 403 themselves.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Forbidden(c, "authentication credentials were not provided")
			c.Abort()
			return
		}

		// 2. Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Forbidden(c, "authentication credentials were not provided")
			c.Abort()
			return
		}

		// 3. Verify signature, expiry and token type
		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Forbidden(c, "invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Forbidden(c, "invalid or expired token")
			c.Abort()
			return
		}

		// 4. Expose identity to downstream middleware and handlers
		c.Set("userID", userID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}
