package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentdesk/job-openings-backend/internal/dtos"
	"github.com/talentdesk/job-openings-backend/internal/services"
)

type DepartmentHandler struct {
	Service *services.DepartmentService
	Logger  *slog.Logger
}

func NewDepartmentHandler(s *services.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{Service: s, Logger: logger}
}

// List is the GET /departments endpoint.
func (h *DepartmentHandler) List(c *gin.Context) {
	rows, err := h.Service.List()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Create is the POST /departments endpoint.
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dtos.DepartmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	dep, err := h.Service.Create(&req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.DepartmentCreatedResponse{ID: dep.ID, Title: dep.Title})
}

// Update is the PUT /departments/{id} endpoint.
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dtos.DepartmentUpdateRequest
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
