package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack/internal/model"
	"logitrack/internal/service"
)

// AlertHandler exposes the alert history
type AlertHandler struct {
	alerts service.AlertStore
}

// NewAlertHandler creates an alert handler
func NewAlertHandler(alerts service.AlertStore) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// RegisterRoutes registers alert endpoints
func (h *AlertHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/alerts", h.ListAlerts)
}

// ListAlerts returns recent alerts, newest first
// @Summary List alerts
// @Tags Alerts
// @Produce json
// @Param limit query int false "Maximum number of alerts" default(50)
// @Success 200 {array} model.Alert
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /alerts [get]
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	var query model.AlertListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alerts, err := h.alerts.List(c.Request.Context(), query.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}
