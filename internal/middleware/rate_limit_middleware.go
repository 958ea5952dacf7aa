// internal/middleware/rate_limit_middleware.go
package middleware

import (
	"context"
	"strconv"

	xerrors "customer-datatable/internal/pkg/errors"
	"customer-datatable/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// unmatchedRoute is the single bucket shared by requests that match no route.
const unmatchedRoute = "unmatched"

// Limiter decides whether a client may make another request.
type Limiter interface {
	Allow(ctx context.Context, clientKey, endpoint string) (bool, int64, error)
}

// RateLimitMiddleware rejects clients over their window with 429.
// If the limiter itself fails the request is let through.
func RateLimitMiddleware(limiter Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = unmatchedRoute
		}

		ok, remaining, err := limiter.Allow(c.Request.Context(), c.ClientIP(), endpoint)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err), zap.String("request_id", GetRequestID(c)))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		if !ok {
			response.FromError(c, xerrors.ErrRateLimited)
			return
		}

		c.Next()
	}
}
