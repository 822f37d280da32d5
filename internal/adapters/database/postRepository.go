package database

import (
	"context"

	"blogapi/internal/core/post"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
type PostRepositoryDatabase struct {
	db *gorm.DB
}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	// فقط id از دیتابیس خوانده می‌شود؛ MySQL به جای RETURNING از LastInsertId استفاده می‌کند
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// List همه پست‌ها به ترتیب date نزولی و سپس id نزولی
func (repo *PostRepositoryDatabase) List(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.db.WithContext(ctx).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "date"}, Desc: true},
			{Column: clause.Column{Name: "id"}, Desc: true},
		}}).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id uint) (int64, error) {
	res := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&post.Post{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
