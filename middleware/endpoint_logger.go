package middleware

import (
	"fmt"
	"time"

	"github.com/ariebrainware/genotator/util"
	"github.com/gin-gonic/gin"
)

// EndpointCallLogger records one access event per request once the handler
// chain has finished, including whether the page cache answered it.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "(unmatched)"
		}
		status := c.Writer.Status()
		details := map[string]interface{}{
			"route":       route,
			"path":        c.Request.URL.Path,
			"query":       c.Request.URL.RawQuery,
			"status":      status,
			"bytes":       c.Writer.Size(),
			"duration_ms": time.Since(start).Milliseconds(),
			"cache_hit":   c.Writer.Header().Get("X-Cache") == "HIT",
			"api":         util.IsAPIRequest(c),
		}

		util.LogAccessEvent(util.AccessEvent{
			EventType: util.EventEndpointCall,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Message:   fmt.Sprintf("%s %s -> %d", c.Request.Method, c.Request.URL.Path, status),
			Details:   details,
		})
	}
}
