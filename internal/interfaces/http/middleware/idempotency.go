package middleware

import (
	"net/http"
	"time"

	"github.com/advisory/backend/internal/domain/shared"
	"github.com/advisory/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader is the request header carrying the client-chosen key
const IdempotencyKeyHeader = "Idempotency-Key"

// Idempotency returns a middleware that rejects replayed create requests.
// A request carrying an Idempotency-Key that was already accepted within
// the TTL gets a 409 instead of provisioning a duplicate record. Requests
// without the header pass through unchanged.
func Idempotency(store shared.IdempotencyStore, ttl time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		fresh, err := store.MarkProcessed(c.Request.Context(), key, ttl)
		if err != nil {
			// The store being down must not block writes
			logger.Warn("idempotency store unavailable, skipping check",
				zap.Error(err),
			)
			c.Next()
			return
		}

		if !fresh {
			logger.Info("rejected replayed request",
				zap.String("idempotency_key", key),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusConflict,
				dto.NewDetail("Request with this Idempotency-Key was already processed"))
			return
		}

		c.Next()
	}
}
