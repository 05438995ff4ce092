package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database connection is alive
type Pinger interface {
	Ping() error
}

// SystemHandler serves operational endpoints
type SystemHandler struct {
	db Pinger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health reports service health including database connectivity
func (h *SystemHandler) Health(c *gin.Context) {
	overall := "ok"
	dbStatus := "ok"
	status := http.StatusOK
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			overall = "degraded"
			dbStatus = "unreachable"
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, gin.H{
		"status":   overall,
		"database": dbStatus,
	})
}
