package handler

import (
	"net/http"

	"nova/internal/db"
	"nova/internal/model"
	"nova/internal/repo"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

const maxVideos = 50

type VideoHandler interface {
	CreateVideo(c *gin.Context)
	ListVideos(c *gin.Context)
}

type videoHandler struct {
	repo repo.DocumentRepository
}

func NewVideoHandler(repo repo.DocumentRepository) VideoHandler {
	return &videoHandler{
		repo: repo,
	}
}

func (h *videoHandler) CreateVideo(c *gin.Context) {
	var video model.Video
	if err := c.ShouldBindJSON(&video); err != nil {
		abortBadBody(c)
		return
	}

	if err := video.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	id, err := h.repo.Create(c.Request.Context(), db.CollectionVideos, video)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListVideos filters by tag membership when a tag is given; an unknown tag
// yields an empty list, not an error.
func (h *videoHandler) ListVideos(c *gin.Context) {
	var filter bson.M
	if tag := c.Query("tag"); tag != "" {
		filter = db.NewFilter().In("tags", tag).Build()
	}

	docs, err := h.repo.List(c.Request.Context(), db.CollectionVideos, filter, maxVideos)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}
