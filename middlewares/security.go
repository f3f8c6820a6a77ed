package middlewares

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders sets the response headers that apply to a JSON-only API.
// No browser content is served, so CSP and HSTS are left to the proxy.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Cache-Control", "no-store")

		c.Next()
	}
}
