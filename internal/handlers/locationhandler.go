package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentdesk/job-openings-backend/internal/dtos"
	"github.com/talentdesk/job-openings-backend/internal/services"
)

type LocationHandler struct {
	Service *services.LocationService
	Logger  *slog.Logger
}

func NewLocationHandler(s *services.LocationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{Service: s, Logger: logger}
}

// List is the GET /locations endpoint.
func (h *LocationHandler) List(c *gin.Context) {
	rows, err := h.Service.List()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Create is the POST /locations endpoint.
func (h *LocationHandler) Create(c *gin.Context) {
	var req dtos.LocationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	loc, err := h.Service.Create(&req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.LocationCreatedResponse{ID: loc.ID, Title: loc.Title})
}

// Update is the PUT /locations/{id} endpoint.
func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dtos.LocationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Service.Update(id, &req); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusOK)
}
