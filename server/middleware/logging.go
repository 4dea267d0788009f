package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/apibase/logger"
)

// RequestLogger logs every request with method, path, status, and latency,
// tagged with the request's trace ID.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		fields := map[string]interface{}{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  status,
			"latency": latency.String(),
			"client":  c.ClientIP(),
		}

		ctxLog := log.WithContext(c.Request.Context())
		switch {
		case status >= 500:
			ctxLog.Error("Request completed", fields)
		case status >= 400:
			ctxLog.Warn("Request completed", fields)
		default:
			ctxLog.Info("Request completed", fields)
		}
	}
}
