package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/apibase/errors"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Status string `json:"status"`
	Detail any    `json:"detail"`
}

// RespondOK sends a 200 response wrapping detail in the success envelope.
func RespondOK(c *gin.Context, detail any) {
	c.JSON(http.StatusOK, SuccessResponse{Status: "success", Detail: detail})
}

// RespondError translates err into the error envelope. An *apperrors.AppError
// determines its own status, code, and headers; anything else becomes the
// generic 500.
func RespondError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Internal(err)
	}
	for k, v := range appErr.Headers {
		c.Header(k, v)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
}
