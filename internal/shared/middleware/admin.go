package middleware

import (
	"github.com/gin-gonic/gin"

	"template-backend/internal/shared/response"
)

// AdminMiddleware restricts a route group to users carrying the admin
// role. It must run after AuthMiddleware, which stores the role claim
// on the context.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			response.Forbidden(c, "you do not have permission to perform this action")
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok || role != "admin" {
			response.Forbidden(c, "you do not have permission to perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}
