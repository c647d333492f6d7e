package handler

import (
	"net/http"

	"nova/internal/db"
	"nova/internal/model"
	"nova/internal/repo"

	"github.com/gin-gonic/gin"
)

const maxChannels = 100

type ChannelHandler interface {
	CreateChannel(c *gin.Context)
	ListChannels(c *gin.Context)
}

type channelHandler struct {
	repo repo.DocumentRepository
}

func NewChannelHandler(repo repo.DocumentRepository) ChannelHandler {
	return &channelHandler{
		repo: repo,
	}
}

func (h *channelHandler) CreateChannel(c *gin.Context) {
	var channel model.Channel
	if err := c.ShouldBindJSON(&channel); err != nil {
		abortBadBody(c)
		return
	}

	if err := channel.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	id, err := h.repo.Create(c.Request.Context(), db.CollectionChannels, channel)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *channelHandler) ListChannels(c *gin.Context) {
	docs, err := h.repo.List(c.Request.Context(), db.CollectionChannels, nil, maxChannels)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}
