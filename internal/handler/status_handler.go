package handler

import (
	"net/http"

	"nova/internal/db"

	"github.com/gin-gonic/gin"
)

const (
	maxCollectionNames = 10
	maxProbeDetail     = 50
)

// StatusHandler serves the liveness message and the database connectivity
// probe. The probe is diagnostic only; it always answers 200 and reports
// collaborator failures inline.
type StatusHandler interface {
	Root(c *gin.Context)
	TestDatabase(c *gin.Context)
}

type statusHandler struct {
	store  *db.Store
	uriSet bool
}

func NewStatusHandler(store *db.Store, uriSet bool) StatusHandler {
	return &statusHandler{
		store:  store,
		uriSet: uriSet,
	}
}

func (h *statusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Nova Social API is live",
	})
}

func (h *statusHandler) TestDatabase(c *gin.Context) {
	report := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url_set":  h.uriSet,
		"database_name":     "",
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if !h.store.Available() {
		c.JSON(http.StatusOK, report)
		return
	}

	report["database"] = "available"
	report["database_name"] = h.store.DatabaseName()
	report["connection_status"] = "connected"

	names, err := h.store.CollectionNames(c.Request.Context())
	if err != nil {
		report["database"] = "connected but error: " + truncate(err.Error(), maxProbeDetail)
		c.JSON(http.StatusOK, report)
		return
	}

	if len(names) > maxCollectionNames {
		names = names[:maxCollectionNames]
	}
	report["database"] = "connected and working"
	report["collections"] = names

	c.JSON(http.StatusOK, report)
}
