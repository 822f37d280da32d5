package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config تنظیمات برنامه که یک بار در شروع خوانده می‌شود
type Config struct {
	Port             string
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	FeedSyncInterval time.Duration
}

type DBConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	ConnectionLimit int
}

type RedisConfig struct {
	Addr     string // خالی یعنی Redis غیرفعال است
	Password string
	DB       int
}

// LoadEnv فایل .env را در صورت وجود بارگذاری می‌کند
func LoadEnv(logger *zap.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}
}

// Load تنظیمات را از متغیرهای محیطی با مقادیر پیش‌فرض توسعه می‌خواند
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("APP_ENV", "development"),
		DB: DBConfig{
			Host:            getEnv("MYSQLHOST", "localhost"),
			Port:            getEnvInt("MYSQLPORT", 3306),
			User:            getEnv("MYSQLUSER", "root"),
			Password:        os.Getenv("MYSQLPASSWORD"),
			Name:            getEnv("MYSQLDATABASE", "blog"),
			ConnectionLimit: getEnvInt("DB_CONNECTION_LIMIT", 10),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		FeedSyncInterval: getEnvDuration("FEED_SYNC_INTERVAL", time.Minute),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return def // مقدار پیش‌فرض
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
