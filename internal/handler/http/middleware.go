package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Authentication happens in front of this service; it forwards the
// caller in this header.
const userHeaderKey = "X-User-ID"
const userIDKey = "user_id"

var errMissingUser = errors.New("caller identity is missing or invalid")

func (h *Handler) identify() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := uuid.Parse(ctx.GetHeader(userHeaderKey))
		if err != nil || userID == uuid.Nil {
			h.handleError(ctx, errMissingUser)
			return
		}

		ctx.Set(userIDKey, userID)

		ctx.Next()
	}
}

func getUserID(ctx *gin.Context) uuid.UUID {
	return ctx.MustGet(userIDKey).(uuid.UUID)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		logger.Debug("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
