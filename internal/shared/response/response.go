package response

import (
	"github.com/gin-gonic/gin"
)

// Wire format giữ đúng contract mà customizer/admin UI consume:
// - success: payload trực tiếp ({"assets": [...]}, {"ok": true, "asset": {...}})
// - error: {"error": "message"}

// OK trả payload trực tiếp
func OK(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

// Error trả {"error": message}
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func UnsupportedMediaType(c *gin.Context, message string) {
	Error(c, 415, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
