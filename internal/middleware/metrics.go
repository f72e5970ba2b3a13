package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/expense_tracker/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records the latency of every request under its route template.
func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Duration.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Observe(time.Since(start).Seconds())
	}
}
