package config

import (
	"go.uber.org/zap"
)

// NewLogger در محیط production لاگر JSON و در غیر این صورت لاگر توسعه می‌سازد
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
