package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLog برای هر درخواست یک خط لاگ می‌نویسد
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("requestID", GetRequestID(c)),
		}
		if status >= 500 {
			logger.Error("request failed", fields...)
			return
		}
		logger.Info("request finished", fields...)
	}
}
