package post

import (
	"errors"
	"time"
)

// DateLayout فرمت تاریخ پست در ورودی و خروجی API
const DateLayout = "2006-01-02"

var (
	// ErrMissingFields عنوان یا محتوا خالی است
	ErrMissingFields = errors.New("title and content are required")
	// ErrInvalidDate تاریخ ارسال‌شده قابل تبدیل نیست
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
	// ErrNotFound هیچ ردیفی با این شناسه وجود ندارد
	ErrNotFound = errors.New("post not found")
)

// Post یک ردیف از جدول posts
type Post struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	Date      time.Time `gorm:"type:date;not null"`
	Games     string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;<-:false"` // توسط دیتابیس مقداردهی می‌شود
}

func (Post) TableName() string {
	return "posts"
}
