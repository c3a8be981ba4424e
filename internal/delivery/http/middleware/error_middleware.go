package middleware

import (
	"errors"
	"net/http"

	"techflow-web-backend/internal/delivery/http/response"
	"techflow-web-backend/pkg/apperror"
	"techflow-web-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// genericDetails replaces the cause of a 5xx error in production responses.
const genericDetails = "internal processing error"

// ErrorHandler renders the last error attached with c.Error.
// In production the cause of a 5xx error is replaced by genericDetails.
func ErrorHandler(isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID, _ := c.Get("RequestID")

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			logger.Log.Error("unhandled error", "error", err, "request_id", reqID, "path", c.FullPath())
			response.Error(c, http.StatusInternalServerError, "Ocurrió un error inesperado. Intenta de nuevo más tarde.", nil)
			return
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("request failed", "error", appErr.Message, "cause", appErr.Err, "request_id", reqID, "path", c.FullPath())
			details := appErr.Details
			if isProduction {
				details = genericDetails
			}
			response.ErrorWithDetails(c, appErr.Code, appErr.Message, details)
			return
		}

		response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
	}
}
