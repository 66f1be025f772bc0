package logger

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ginLoggerKey is where the request-scoped logger lives in the gin context.
const ginLoggerKey = "logger"

// GinMiddleware returns a gin middleware that attaches a request-scoped
// logger and writes one access log entry per request. The log level follows
// the response status: 5xx at error, 4xx at warn, everything else at info.
func GinMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		reqLogger := log.With(
			zap.String("request_id", requestIDFromGin(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
		)
		c.Set(ginLoggerKey, reqLogger)

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Int("body_size", c.Writer.Size()),
		}

		// The registered route pattern keeps per-ID paths aggregatable,
		// e.g. /api/v1/restaurants/:id instead of each UUID.
		if route := c.FullPath(); route != "" {
			fields = append(fields, zap.String("route", route))
		}
		if query := c.Request.URL.RawQuery; query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			reqLogger.Error("request completed", fields...)
		case status >= http.StatusBadRequest:
			reqLogger.Warn("request completed", fields...)
		default:
			reqLogger.Info("request completed", fields...)
		}
	}
}

// Recovery returns a gin middleware that recovers from panics, logs them
// with the request-scoped logger when one is present, and responds 500.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				// Prefer the request-scoped logger; fall back to the base
				// logger when GinMiddleware has not run for this request.
				panicLogger, ok := c.Value(ginLoggerKey).(*zap.Logger)
				if !ok {
					panicLogger = log.With(
						zap.String("request_id", requestIDFromGin(c)),
						zap.String("method", c.Request.Method),
						zap.String("path", c.Request.URL.Path),
					)
				}

				panicLogger.Error("panic recovered",
					zap.Any("panic", r),
					zap.Stack("stack"),
				)

				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// GetGinLogger retrieves the request-scoped logger from the gin context. It
// returns a no-op logger outside of GinMiddleware so callers never nil-check.
func GetGinLogger(c *gin.Context) *zap.Logger {
	if v, exists := c.Get(ginLoggerKey); exists {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}

// requestIDFromGin reads the ID set by the RequestID middleware; empty when
// that middleware is not installed.
func requestIDFromGin(c *gin.Context) string {
	return c.GetString("request_id")
}
