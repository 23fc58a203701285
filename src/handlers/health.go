package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techmagnet/seacheck/src/database"
	"github.com/techmagnet/seacheck/src/services"
)

// Version reported by the health endpoint
const Version = "2.0"

// features advertised by the health endpoint
var features = []string{"real-time-checking", "auto-detection", "admin-auth"}

// HealthHandler handles health and readiness checks
type HealthHandler struct {
	db              *database.Database
	giftCardService *services.GiftCardService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.Database, giftCardService *services.GiftCardService) *HealthHandler {
	return &HealthHandler{
		db:              db,
		giftCardService: giftCardService,
	}
}

// HandleHealth returns service status including the stored record count
func (hh *HealthHandler) HandleHealth(c *gin.Context) {
	count, err := hh.giftCardService.CountRecords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "Error",
			"error":  "database unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "OK",
		"database": "PostgreSQL",
		"records":  count,
		"version":  Version,
		"features": features,
	})
}

// HandleReady returns readiness status (for load balancers)
func (hh *HealthHandler) HandleReady(c *gin.Context) {
	if err := hh.db.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ready": true})
}
