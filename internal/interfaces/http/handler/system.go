package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/crm/backend/internal/infrastructure/logger"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping() error
}

// SystemHandler serves the service index and health endpoints
type SystemHandler struct {
	name      string
	version   string
	db        Pinger
	startedAt time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(name, version string, db Pinger) *SystemHandler {
	return &SystemHandler{
		name:      name,
		version:   version,
		db:        db,
		startedAt: time.Now(),
	}
}

// Index godoc
// @ID           index
// @Summary      Service metadata
// @Description  Returns the service name, version, and the customers collection URL
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func (h *SystemHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    h.name,
		"version": h.version,
		"paths":   "/api/v1/customers",
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// Health godoc
// @ID           health
// @Summary      Health check
// @Description  Reports OK when the service and its database are reachable
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// RegisterSystemRoutes registers the index and health endpoints on the engine root.
func (h *SystemHandler) RegisterSystemRoutes(engine *gin.Engine) {
	engine.GET("/", h.Index)
	engine.GET("/health", h.Health)
}
