package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/apibase/errors"
	"github.com/kbukum/apibase/logger"
)

// Recovery catches panics from handlers, logs the fault with its stack and
// trace ID, and responds with the generic 500 envelope. No internal detail
// reaches the caller.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithContext(c.Request.Context()).Error("Unhandled panic", map[string]interface{}{
					"error":  fmt.Sprintf("%v", rec),
					"stack":  string(debug.Stack()),
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
				})
				abortWithError(c, apperrors.Internal(fmt.Errorf("%v", rec)))
			}
		}()
		c.Next()
	}
}
