package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every request with an ID and writes one access log line.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request.id", id)
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		slog.InfoContext(c.Request.Context(), "request handled",
			"request.id", id,
			"http.method", c.Request.Method,
			"http.route", c.FullPath(),
			"http.status_code", c.Writer.Status(),
			"http.duration", time.Since(start),
		)
	}
}
