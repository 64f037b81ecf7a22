package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type HTTPObserver interface {
	ObserveHTTP(route, method string, status int, elapsed time.Duration)
}

// MetricsMiddleware labels by route template so path parameters do not explode cardinality.
func MetricsMiddleware(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
