package handler

import (
	"net/http"

	"nova/internal/db"
	"nova/internal/model"
	"nova/internal/repo"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

const maxMessages = 100

type MessageHandler interface {
	CreateMessage(c *gin.Context)
	ListMessages(c *gin.Context)
}

type messageHandler struct {
	repo repo.DocumentRepository
}

func NewMessageHandler(repo repo.DocumentRepository) MessageHandler {
	return &messageHandler{
		repo: repo,
	}
}

func (h *messageHandler) CreateMessage(c *gin.Context) {
	var message model.Message
	if err := c.ShouldBindJSON(&message); err != nil {
		abortBadBody(c)
		return
	}

	if err := message.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	id, err := h.repo.Create(c.Request.Context(), db.CollectionMessages, message)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListMessages returns messages in one channel when channel_id is given,
// otherwise the most recent slice of all channels.
func (h *messageHandler) ListMessages(c *gin.Context) {
	var filter bson.M
	if channelID := c.Query("channel_id"); channelID != "" {
		filter = db.NewFilter().Eq("channel_id", channelID).Build()
	}

	docs, err := h.repo.List(c.Request.Context(), db.CollectionMessages, filter, maxMessages)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}
