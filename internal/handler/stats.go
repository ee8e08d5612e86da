package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack/internal/service"
)

// StatsHandler exposes fleet-wide statistics and the latest snapshot
type StatsHandler struct {
	stats *service.StatsService
	fleet *service.FleetService
}

// NewStatsHandler creates a stats handler
func NewStatsHandler(stats *service.StatsService, fleet *service.FleetService) *StatsHandler {
	return &StatsHandler{stats: stats, fleet: fleet}
}

// RegisterRoutes registers fleet statistics endpoints
func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/fleet/stats", h.GetFleetStats)
	r.GET("/fleet/snapshot", h.GetLatestSnapshot)
}

// GetFleetStats returns fleet-wide statistics
// @Summary Get fleet statistics
// @Description Counts per status, average fuel, total distance, today's alert volume
// @Tags Fleet
// @Produce json
// @Success 200 {object} model.FleetStats
// @Failure 500 {object} map[string]string
// @Router /fleet/stats [get]
func (h *StatsHandler) GetFleetStats(c *gin.Context) {
	stats, err := h.stats.ComputeFleetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetLatestSnapshot returns the most recently broadcast fleet snapshot
// @Summary Get latest fleet snapshot
// @Description The last broadcast snapshot, or a fresh view of the registry if none is cached
// @Tags Fleet
// @Produce json
// @Success 200 {object} model.FleetSnapshot
// @Failure 500 {object} map[string]string
// @Router /fleet/snapshot [get]
func (h *StatsHandler) GetLatestSnapshot(c *gin.Context) {
	snapshot, err := h.fleet.LatestSnapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
