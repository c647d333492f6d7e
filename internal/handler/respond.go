package handler

import (
	"errors"
	"net/http"

	"nova/internal/model"
	"nova/internal/repo"

	"github.com/gin-gonic/gin"
)

// Internal error detail is bounded before it reaches a client.
const maxErrorDetail = 120

func abortWithError(c *gin.Context, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr})
		return
	}

	if errors.Is(err, repo.ErrStorageUnavailable) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "database not available",
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": truncate(err.Error(), maxErrorDetail),
	})
}

func abortBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "invalid request body",
	})
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
