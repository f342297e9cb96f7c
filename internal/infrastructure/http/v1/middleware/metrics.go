package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records finished requests.
type RequestObserver interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
}

// Metrics middleware reports every request to obs, labelled by route
// template rather than raw path to keep label cardinality bounded.
func Metrics(obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
