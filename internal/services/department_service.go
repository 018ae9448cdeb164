package services

import (
	"strings"

	"github.com/talentdesk/job-openings-backend/internal/dtos"
	"github.com/talentdesk/job-openings-backend/internal/models"
	"gorm.io/gorm"
)

type DepartmentService struct {
	DB *gorm.DB
}

func NewDepartmentService(db *gorm.DB) *DepartmentService {
	return &DepartmentService{DB: db}
}

// List returns every department with the number of jobs referencing it.
func (s *DepartmentService) List() ([]dtos.DepartmentRow, error) {
	rows := []dtos.DepartmentRow{}
	err := s.DB.Model(&models.Department{}).
		Select("departments.id, departments.title, COUNT(jobs.id) AS count").
		Joins("LEFT JOIN jobs ON jobs.department_id = departments.id").
		Group("departments.id").
		Order("departments.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *DepartmentService) Create(req *dtos.DepartmentCreateRequest) (*models.Department, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	dep := &models.Department{Title: title}
	if err := s.DB.Create(dep).Error; err != nil {
		return nil, err
	}
	return dep, nil
}

// Update replaces the title when one is supplied; an absent title keeps
// the stored value. Returns gorm.ErrRecordNotFound for an unknown id.
func (s *DepartmentService) Update(id uint, req *dtos.DepartmentUpdateRequest) error {
	var dep models.Department
	if err := s.DB.First(&dep, id).Error; err != nil {
		return err
	}
	if req.Title != nil {
		dep.Title = strings.TrimSpace(*req.Title)
	}
	return s.DB.Save(&dep).Error
}
