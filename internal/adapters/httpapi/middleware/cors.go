package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS درخواست از هر مبدأ را مجاز می‌کند
func CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, HeaderRequestID)
	cfg.ExposeHeaders = []string{HeaderRequestID}
	return cors.New(cfg)
}
