package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack/internal/model"
	"logitrack/internal/service"
)

// RouteHandler exposes route operations
type RouteHandler struct {
	routes *service.RouteService
}

// NewRouteHandler creates a route handler
func NewRouteHandler(routes *service.RouteService) *RouteHandler {
	return &RouteHandler{routes: routes}
}

// RegisterRoutes registers route endpoints
func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/routes", h.ListRoutes)
	r.POST("/routes", h.CreateRoute)
}

// ListRoutes returns all routes
// @Summary List routes
// @Tags Routes
// @Produce json
// @Success 200 {array} model.Route
// @Failure 500 {object} map[string]string
// @Router /routes [get]
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	routes, err := h.routes.ListRoutes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, routes)
}

// CreateRoute creates a route with computed distance and duration
// @Summary Create route
// @Description Create a route; distance and estimated time are computed from the waypoints
// @Tags Routes
// @Accept json
// @Produce json
// @Param route body model.CreateRouteRequest true "Route to create"
// @Success 201 {object} model.Route
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /routes [post]
func (h *RouteHandler) CreateRoute(c *gin.Context) {
	var req model.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := h.routes.CreateRoute(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, route)
}
