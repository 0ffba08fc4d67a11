package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError writes the response matching err and aborts the request.
// Unknown errors are logged and reported without internal details.
func HandleAPIError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, verr.Fields)
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrBadRequest):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			apperrors.NonFieldErrorsKey: []string{clientMessage(err, err.Error())},
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewDetailResponse(clientMessage(err, dto.DetailPermissionDenied)))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, dto.NewDetailResponse(dto.DetailNotFound))
	default:
		logger.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewDetailResponse(dto.DetailServerError))
	}
}

// NotFound answers unknown routes in the same shape as missing resources
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleAPIError(c, apperrors.ErrResourceNotFound)
	}
}

// clientMessage returns the message of the outermost CustomError in err's chain
func clientMessage(err error, fallback string) string {
	var cerr *apperrors.CustomError
	if errors.As(err, &cerr) && cerr.Message != "" {
		return cerr.Message
	}
	return fallback
}
