package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
)

const slowRequest = 200 * time.Millisecond

// RequestLogger logs one line per request and warns on slow ones.
func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		ctx := c.Request.Context()

		args := []any{
			"method", c.Request.Method,
			"path", path(c),
			"status", c.Writer.Status(),
			"latency", latency,
		}
		if who := identity.FromGin(c); who != nil {
			args = append(args, "owner", who.UserID)
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error(ctx, "request failed", args...)
		case latency > slowRequest:
			log.Warn(ctx, "slow request", args...)
		default:
			log.Info(ctx, "request", args...)
		}
	}
}

func path(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}
