package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shauryacodes/nas-backend/internal/http/response"
	"github.com/shauryacodes/nas-backend/internal/platform/apierr"
)

// respondServiceError unwraps apierr.Error so the service layer controls
// status and code; anything else is a bare 500 with the raw message.
func respondServiceError(c *gin.Context, err error) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		response.RespondError(c, status, ae.Code, err)
		return
	}
	response.RespondError(c, http.StatusInternalServerError, "internal_error", err)
}
