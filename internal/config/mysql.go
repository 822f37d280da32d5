package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DSN رشته اتصال MySQL را از تنظیمات می‌سازد
func (c DBConfig) DSN() string {
	cfg := mysqldriver.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	cfg.DBName = c.Name
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN()
}

// OpenDB استخر اتصال به MySQL را می‌سازد و با Ping در دسترس بودن آن را بررسی می‌کند.
// وقتی همه اتصال‌ها مشغول باشند درخواست‌ها منتظر می‌مانند (صف نامحدود).
func OpenDB(c DBConfig, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(c.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	if err := ConfigurePool(db, c.ConnectionLimit); err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	logger.Info("Database connected",
		zap.String("addr", net.JoinHostPort(c.Host, strconv.Itoa(c.Port))),
		zap.String("database", c.Name),
		zap.Int("connectionLimit", c.ConnectionLimit),
	)
	return db, nil
}

// ConfigurePool سقف اتصال‌های همزمان استخر را تنظیم می‌کند
func ConfigurePool(db *gorm.DB, limit int) error {
	sqlDB, err := db.DB() // گرفتن *sql.DB از *gorm.DB
	if err != nil {
		return fmt.Errorf("get raw db: %w", err)
	}
	if limit <= 0 {
		limit = 10
	}
	sqlDB.SetMaxOpenConns(limit)
	sqlDB.SetMaxIdleConns(limit)
	return nil
}

// CloseDB بستن اتصال‌های استخر
func CloseDB(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
