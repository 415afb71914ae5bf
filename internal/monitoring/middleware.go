package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestMetrics wraps every call with request-count and request-latency
// emission, independent of model-level metrics. The start timestamp is held
// in a local, not smuggled through shared state.
func RequestMetrics(sink Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.Request.URL.Path
		sink.RecordRequest(c.Request.Method, endpoint, c.Writer.Status())
		sink.ObserveLatency(endpoint, time.Since(start).Seconds())
	}
}

func statusText(status int) string {
	return strconv.Itoa(status)
}
