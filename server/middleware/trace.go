package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/apibase/trace"
)

// Trace assigns a fresh trace ID to every request, attaches it to the
// request context for handlers and logging, and writes it to the X-Trace-ID
// response header. The header is set before the handler runs so it is
// present on every response, including rejections and panics.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := trace.NewID()
		c.Request = c.Request.WithContext(trace.WithID(c.Request.Context(), id))
		c.Header(trace.HeaderName, id)
		c.Next()
	}
}
