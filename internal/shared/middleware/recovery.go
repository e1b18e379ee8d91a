package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"template-backend/internal/shared/response"
)

// Recovery converts panics into a 500 response instead of tearing the
// connection down mid-stream.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Interface("error", err).
					Msg("Panic recovered")

				c.JSON(http.StatusInternalServerError, response.ErrorBody{
					Detail: "internal server error",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
