package response

import (
	"github.com/gin-gonic/gin"
)

// Error payloads carry a single human-readable detail message.
// Validation failures instead carry a field-level error list under
// "validation_errors". Success payloads are written by the handlers
// directly since each endpoint has its own shape.

type ErrorBody struct {
	Detail string `json:"detail"`
}

type ValidationErrorBody struct {
	ValidationErrors interface{} `json:"validation_errors"`
}

// Detail writes an error response with the given status code
func Detail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Detail: message})
}

// ValidationFailed writes a 400 with the field-level error list
func ValidationFailed(c *gin.Context, fieldErrors interface{}) {
	c.JSON(400, ValidationErrorBody{ValidationErrors: fieldErrors})
}

// Common error responses

func BadRequest(c *gin.Context, message string) {
	Detail(c, 400, message)
}

func Forbidden(c *gin.Context, message string) {
	Detail(c, 403, message)
}

func NotFound(c *gin.Context, message string) {
	Detail(c, 404, message)
}

func InternalServerError(c *gin.Context, message string) {
	Detail(c, 500, message)
}
