package post

import (
	"context"
	"time"

	"blogapi/internal/core/post"
)

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	List(ctx context.Context) ([]*post.Post, error)
	// Delete تعداد ردیف‌های حذف‌شده را برمی‌گرداند
	Delete(ctx context.Context, id uint) (int64, error)
}

// FeedIndex پورت برای نگهداری فهرست شناسه پست‌ها در Redis
type FeedIndex interface {
	Add(ctx context.Context, id uint, date time.Time) error
	Remove(ctx context.Context, id uint) error
	Replace(ctx context.Context, entries []FeedEntry) error
}

type FeedEntry struct {
	ID   uint
	Date time.Time
}

// DTOها برای UseCase
type PostDTO struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	Games     string `json:"games"`
	CreatedAt string `json:"created_at"`
}

type CreatePostInput struct {
	Title   string
	Content string
	Date    string
	Games   string
}

func ToDTO(p *post.Post) *PostDTO {
	return &PostDTO{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Date:      p.Date.Format(post.DateLayout),
		Games:     p.Games,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
