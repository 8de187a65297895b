package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tradelog/internal/metrics"
)

// Metrics records request counts and latency by route template, so
// /api/trades/:id is one series regardless of the id.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
