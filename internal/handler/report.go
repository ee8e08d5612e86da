package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"logitrack/internal/service"
)

// ReportHandler exposes downloadable fleet reports
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler creates a report handler
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// RegisterRoutes registers report endpoints
func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/reports/fleet/export", h.ExportFleetReport)
}

// ExportFleetReport streams an Excel workbook of the current fleet state
// @Summary Export fleet report
// @Description Download an xlsx file with current vehicle state and recent alerts
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /reports/fleet/export [get]
func (h *ReportHandler) ExportFleetReport(c *gin.Context) {
	buf, err := h.reports.ExportFleetReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("fleet_report_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
