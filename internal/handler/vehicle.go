package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack/internal/model"
	"logitrack/internal/service"
)

// VehicleHandler exposes vehicle CRUD operations
type VehicleHandler struct {
	fleet *service.FleetService
}

// NewVehicleHandler creates a vehicle handler
func NewVehicleHandler(fleet *service.FleetService) *VehicleHandler {
	return &VehicleHandler{fleet: fleet}
}

// RegisterRoutes registers vehicle routes
func (h *VehicleHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/vehicles", h.ListVehicles)
	r.POST("/vehicles", h.CreateVehicle)
}

// ListVehicles returns the current fleet
// @Summary List vehicles
// @Description Get the live state of every vehicle in the fleet
// @Tags Vehicles
// @Produce json
// @Success 200 {array} model.Vehicle
// @Failure 500 {object} map[string]string
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.fleet.ListVehicles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle registers a new vehicle
// @Summary Create vehicle
// @Description Register a new vehicle; it starts idle with a full tank
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param vehicle body model.CreateVehicleRequest true "Vehicle to create"
// @Success 201 {object} model.Vehicle
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req model.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.fleet.CreateVehicle(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}
