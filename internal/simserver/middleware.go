package simserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/l2sim/pdcp-entity/pkg/httputil"
)

const traceIDHeader = "X-Trace-Id"

// TraceIDMiddleware reads X-Trace-Id from the request, generating one
// with google/uuid when the caller didn't supply it.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set(TraceIDKey, traceID)
		c.Header(traceIDHeader, traceID)
		c.Next()
	}
}

// LoggingMiddleware logs one line per completed request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		traceID, _ := c.Get(TraceIDKey)
		slog.Info("request completed",
			"trace_id", traceID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"http_status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

// RecoveryMiddleware converts a panic into a 500 ProblemDetail instead of
// crashing the process.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				traceID, _ := c.Get(TraceIDKey)
				slog.Error("panic recovered", "trace_id", traceID, "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httputil.InternalServerError("an unexpected error occurred"))
			}
		}()
		c.Next()
	}
}
