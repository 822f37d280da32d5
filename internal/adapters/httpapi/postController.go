package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	postEntity "blogapi/internal/core/post"
	postPort "blogapi/internal/ports/post"

	"github.com/gin-gonic/gin"
)

const deletedMessage = "post deleted"

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) ListPosts(c *gin.Context) {
	posts, err := ctl.pc.ListPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
		Date    string `json:"date"`
		Games   string `json:"games"`
	}
	// اعتبارسنجی JSON ورودی، پیش از هر تماس با دیتابیس
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": postEntity.ErrMissingFields.Error()})
		return
	}

	id, err := ctl.pc.CreatePost(c.Request.Context(), postPort.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Date:    req.Date,
		Games:   req.Games,
	})
	if err != nil {
		if errors.Is(err, postEntity.ErrMissingFields) || errors.Is(err, postEntity.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	// شناسه غیرعددی هیچ‌وقت با ردیفی تطابق ندارد
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": postEntity.ErrNotFound.Error()})
		return
	}

	if err := ctl.pc.DeletePost(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, postEntity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": postEntity.ErrNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": deletedMessage})
}
