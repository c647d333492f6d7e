package handler

import (
	"net/http"

	"nova/internal/model"
	"nova/internal/service"

	"github.com/gin-gonic/gin"
)

type BotHandler interface {
	Chat(c *gin.Context)
}

type botHandler struct{}

func NewBotHandler() BotHandler {
	return &botHandler{}
}

// Chat runs the keyword-matched reply generator. Nothing is persisted.
func (h *botHandler) Chat(c *gin.Context) {
	var msg model.BotMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		abortBadBody(c)
		return
	}

	if err := msg.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply": service.Reply(msg.User, msg.Message),
	})
}
