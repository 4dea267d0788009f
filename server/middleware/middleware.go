// Package middleware provides the request pipeline: trace-ID propagation,
// panic recovery, request logging, CORS, rate limiting, and the
// authentication gate. Order matters — Trace runs first so every later
// stage (and every response, success or failure) carries the trace ID.
package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/apibase/errors"
)

// abortWithError terminates the request with the standard error envelope,
// emitting any headers the error carries (e.g. WWW-Authenticate).
func abortWithError(c *gin.Context, err *apperrors.AppError) {
	for k, v := range err.Headers {
		c.Header(k, v)
	}
	c.AbortWithStatusJSON(err.HTTPStatus, err.ToEnvelope())
}
