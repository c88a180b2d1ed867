package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware opens the read-only JSON API to any origin. HTML pages are
// same-origin and do not use it. X-Cache is exposed so clients can see
// page cache hits.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
		h.Set("Access-Control-Expose-Headers", "X-Cache")

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" {
			h.Set("Access-Control-Allow-Headers", reqHeaders)
		}
		c.AbortWithStatus(http.StatusNoContent)
	}
}
