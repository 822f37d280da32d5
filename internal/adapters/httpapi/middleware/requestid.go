package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestID شناسه درخواست ورودی را نگه می‌دارد یا یک UUID جدید می‌سازد
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.Must(uuid.NewV4()).String()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// GetRequestID شناسه درخواست جاری
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
