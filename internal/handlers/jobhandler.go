package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentdesk/job-openings-backend/internal/dtos"
	"github.com/talentdesk/job-openings-backend/internal/services"
)

type JobHandler struct {
	Service *services.JobService
	Logger  *slog.Logger
}

func NewJobHandler(s *services.JobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{Service: s, Logger: logger}
}

// Create is the POST /jobs endpoint. On success it returns the full job
// record, including the generated code and posted date.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.Service.Create(&req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Update is the PUT /jobs/{id} endpoint.
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dtos.JobUpdateRequest
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

// Get is the GET /jobs/{id} endpoint; location and department come back
// nested.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	details, err := h.Service.Get(id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// List is the POST /jobs/list endpoint. The request is prefilled with the
// documented defaults (q="", pageNo=1, pageSize=10) before binding, so
// fields the caller leaves out keep their defaults and only explicitly sent
// values go through the service's clamps. A missing body (EOF) keeps all
// defaults.
func (h *JobHandler) List(c *gin.Context) {
	req := dtos.DefaultJobListRequest()
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	resp, err := h.Service.List(&req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete is the DELETE /jobs/{id} endpoint.
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusOK)
}
