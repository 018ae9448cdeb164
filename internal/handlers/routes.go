package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/talentdesk/job-openings-backend/internal/services"
	"gorm.io/gorm"
)

// RegisterRoutes wires every API route under /api/v1 onto the engine.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *slog.Logger) {
	departmentHandler := NewDepartmentHandler(services.NewDepartmentService(db), logger)
	locationHandler := NewLocationHandler(services.NewLocationService(db), logger)
	jobHandler := NewJobHandler(services.NewJobService(db), logger)

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		api.GET("/departments", departmentHandler.List)
		api.POST("/departments", departmentHandler.Create)
		api.PUT("/departments/:id", departmentHandler.Update)

		api.GET("/locations", locationHandler.List)
		api.POST("/locations", locationHandler.Create)
		api.PUT("/locations/:id", locationHandler.Update)

		api.POST("/jobs", jobHandler.Create)
		api.POST("/jobs/list", jobHandler.List)
		api.GET("/jobs/:id", jobHandler.Get)
		api.PUT("/jobs/:id", jobHandler.Update)
		api.DELETE("/jobs/:id", jobHandler.Delete)
	}
}
