package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger logs one line per request with method, path, status and latency.
func Logger() gin.HandlerFunc {
	logger := zap.S().Named("http")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"ip", c.ClientIP(),
			"user-agent", c.Request.UserAgent(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		}

		if len(c.Errors) > 0 {
			logger.Errorw(c.Errors.ByType(gin.ErrorTypePrivate).String(), fields...)
			return
		}
		logger.Infow("request completed", fields...)
	}
}
