package workers

import (
	"context"
	"time"

	postPort "blogapi/internal/ports/post"

	"go.uber.org/zap"
)

// FeedWorker فهرست پست‌ها در Redis را به صورت دوره‌ای با دیتابیس همگام می‌کند
type FeedWorker struct {
	PostRepo  postPort.PostRepository
	FeedIndex postPort.FeedIndex
	Interval  time.Duration
	Logger    *zap.Logger
}

func NewFeedWorker(
	postRepo postPort.PostRepository,
	feedIndex postPort.FeedIndex,
	interval time.Duration,
	logger *zap.Logger,
) *FeedWorker {
	return &FeedWorker{
		PostRepo:  postRepo,
		FeedIndex: feedIndex,
		Interval:  interval,
		Logger:    logger,
	}
}

// Run یک همگام‌سازی فوری و سپس هر Interval یک بار، تا لغو ctx
func (w *FeedWorker) Run(ctx context.Context) {
	w.Logger.Info("FeedWorker started", zap.Duration("interval", w.Interval))
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		if err := w.Sync(ctx); err != nil && ctx.Err() == nil {
			w.Logger.Error("Error syncing feed index", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			w.Logger.Info("FeedWorker stopped")
			return
		case <-ticker.C:
		}
	}
}

// Sync محتوای فعلی جدول posts را در فهرست Redis جایگزین می‌کند
func (w *FeedWorker) Sync(ctx context.Context) error {
	posts, err := w.PostRepo.List(ctx)
	if err != nil {
		return err
	}

	entries := make([]postPort.FeedEntry, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, postPort.FeedEntry{ID: p.ID, Date: p.Date})
	}
	if err := w.FeedIndex.Replace(ctx, entries); err != nil {
		return err
	}

	w.Logger.Debug("Feed index synced", zap.Int("count", len(entries)))
	return nil
}
