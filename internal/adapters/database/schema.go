package database

import (
	"fmt"

	"blogapi/internal/core/post"

	"gorm.io/gorm"
)

// EnsureSchema جدول posts را در صورت نبودن می‌سازد. اجرای مکرر آن بی‌اثر است.
func EnsureSchema(db *gorm.DB) error {
	m := db.Migrator()
	if m.HasTable(&post.Post{}) {
		return nil
	}
	if err := m.CreateTable(&post.Post{}); err != nil {
		return fmt.Errorf("create posts table: %w", err)
	}
	return nil
}
