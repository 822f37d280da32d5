package postapp

import (
	"context"
	"strings"
	"time"

	postEntity "blogapi/internal/core/post"
	postPort "blogapi/internal/ports/post"

	"go.uber.org/zap"
)

type PostService struct {
	PostRepository postPort.PostRepository
	FeedIndex      postPort.FeedIndex // اختیاری؛ خطاهای آن روی پاسخ اثر ندارد
	Logger         *zap.Logger
	now            func() time.Time
}

func NewPostService(postRepo postPort.PostRepository, feed postPort.FeedIndex, logger *zap.Logger) *PostService {
	if feed == nil {
		feed = NopFeedIndex{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostService{
		PostRepository: postRepo,
		FeedIndex:      feed,
		Logger:         logger,
		now:            time.Now,
	}
}

// ListPosts همه پست‌ها، جدیدترین اول
func (s *PostService) ListPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.List(ctx)
	if err != nil {
		s.Logger.Error("Error listing posts", zap.Error(err))
		return nil, err
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, postPort.ToDTO(p))
	}
	return dtos, nil
}

// CreatePost اعتبارسنجی، مقداردهی پیش‌فرض و درج یک پست. شناسه جدید را برمی‌گرداند.
func (s *PostService) CreatePost(ctx context.Context, in postPort.CreatePostInput) (uint, error) {
	if in.Title == "" || in.Content == "" {
		return 0, postEntity.ErrMissingFields
	}

	date, err := s.resolveDate(in.Date)
	if err != nil {
		return 0, err
	}

	p := &postEntity.Post{
		Title:   in.Title,
		Content: in.Content,
		Date:    date,
		Games:   in.Games,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		s.Logger.Error("Error creating post", zap.Error(err))
		return 0, err
	}
	s.Logger.Info("Created post", zap.Uint("id", created.ID))

	if err := s.FeedIndex.Add(ctx, created.ID, created.Date); err != nil {
		s.Logger.Warn("Could not add post to feed index", zap.Uint("id", created.ID), zap.Error(err))
	}

	return created.ID, nil
}

// DeletePost حذف پست با شناسه. اگر ردیفی حذف نشود ErrNotFound برمی‌گردد.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	affected, err := s.PostRepository.Delete(ctx, id)
	if err != nil {
		s.Logger.Error("Error deleting post", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		return postEntity.ErrNotFound
	}
	s.Logger.Info("Deleted post", zap.Uint("id", id))

	if err := s.FeedIndex.Remove(ctx, id); err != nil {
		s.Logger.Warn("Could not remove post from feed index", zap.Uint("id", id), zap.Error(err))
	}
	return nil
}

// resolveDate تاریخ خالی را به امروز (UTC) تبدیل می‌کند
func (s *PostService) resolveDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		now := s.now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	if d, err := time.Parse(postEntity.DateLayout, raw); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, postEntity.ErrInvalidDate
	}
	ts = ts.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

// NopFeedIndex وقتی Redis تنظیم نشده استفاده می‌شود
type NopFeedIndex struct{}

func (NopFeedIndex) Add(context.Context, uint, time.Time) error { return nil }

func (NopFeedIndex) Remove(context.Context, uint) error { return nil }

func (NopFeedIndex) Replace(context.Context, []postPort.FeedEntry) error { return nil }
