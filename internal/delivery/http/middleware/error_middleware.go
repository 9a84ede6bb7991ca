package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		switch {
		case errors.As(err, &appErr):
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"path", c.FullPath(), "status", appErr.Code, "error", err,
					"request_id", c.GetString(string(domain.KeyRequestID)))
			}
			var details interface{}
			var verrs validator.ValidationErrors
			if errors.As(appErr, &verrs) {
				details = validation.FormatValidationErrors(verrs)
			}
			response.Error(c, appErr.Code, appErr.Message, details)
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Resource not found", nil)
		default:
			// Internal details are logged, never returned.
			logger.Log.Error("internal server error",
				"path", c.FullPath(), "error", err,
				"request_id", c.GetString(string(domain.KeyRequestID)))
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
