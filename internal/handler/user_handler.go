package handler

import (
	"net/http"

	"nova/internal/db"
	"nova/internal/model"
	"nova/internal/repo"

	"github.com/gin-gonic/gin"
)

const maxUsers = 100

type UserHandler interface {
	CreateUser(c *gin.Context)
	ListUsers(c *gin.Context)
}

type userHandler struct {
	repo repo.DocumentRepository
}

func NewUserHandler(repo repo.DocumentRepository) UserHandler {
	return &userHandler{
		repo: repo,
	}
}

func (h *userHandler) CreateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		abortBadBody(c)
		return
	}

	if err := user.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	id, err := h.repo.Create(c.Request.Context(), db.CollectionUsers, user)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *userHandler) ListUsers(c *gin.Context) {
	docs, err := h.repo.List(c.Request.Context(), db.CollectionUsers, nil, maxUsers)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}
