package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/pkg/logger"
	"github.com/yigit/university/internal/pkg/validation"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

// RequestID assigns every request an id, echoes it in the response and
// stores a logger carrying it in the request context. A client id that is
// empty or malformed is replaced by a fresh UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !validation.IsValidRequestID(id) {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		lgr := logger.Get().With().Str("requestID", id).Logger()
		c.Request = c.Request.WithContext(lgr.WithContext(c.Request.Context()))
		c.Next()
	}
}

// RequestLogger logs one line per request once it completes
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		var evt *zerolog.Event
		lgr := logger.Ctx(c.Request.Context())
		switch {
		case status >= http.StatusInternalServerError:
			evt = lgr.Error()
		case status >= http.StatusBadRequest:
			evt = lgr.Warn()
		default:
			evt = lgr.Info()
		}
		evt.Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}

// Recovery turns panics into a logged 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewDetailResponse(dto.DetailServerError))
	})
}
