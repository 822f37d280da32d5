package httpapi

import (
	"context"

	"blogapi/internal/adapters/httpapi/middleware"
	postPort "blogapi/internal/ports/post"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// PostUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type PostUseCase interface {
	ListPosts(ctx context.Context) ([]*postPort.PostDTO, error)
	CreatePost(ctx context.Context, in postPort.CreatePostInput) (uint, error)
	DeletePost(ctx context.Context, id uint) error
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(postUC PostUseCase, db Pinger, logger *zap.Logger, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.Metrics(registry),
		middleware.CORS(),
	)

	pc := NewPostController(postUC)
	hc := NewHealthController(db)

	api := r.Group("/api")
	api.GET("/posts", pc.ListPosts)
	api.POST("/posts", pc.CreatePost)
	api.DELETE("/posts/:id", pc.DeletePost)

	r.GET("/healthz", hc.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	return r
}
