package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger هر چیزی که در دسترس بودن دیتابیس را بررسی کند
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthController struct{ db Pinger }

func NewHealthController(db Pinger) *HealthController { return &HealthController{db: db} }

func (ctl *HealthController) Health(c *gin.Context) {
	if err := ctl.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
