package services

import (
	"strings"

	"github.com/talentdesk/job-openings-backend/internal/dtos"
	"github.com/talentdesk/job-openings-backend/internal/models"
	"gorm.io/gorm"
)

type LocationService struct {
	DB *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{DB: db}
}

// List returns every location with the number of jobs referencing it.
func (s *LocationService) List() ([]dtos.LocationRow, error) {
	rows := []dtos.LocationRow{}
	err := s.DB.Model(&models.Location{}).
		Select("locations.id, locations.title, locations.city, locations.state, locations.country, locations.zip, COUNT(jobs.id) AS count").
		Joins("LEFT JOIN jobs ON jobs.location_id = locations.id").
		Group("locations.id").
		Order("locations.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *LocationService) Create(req *dtos.LocationCreateRequest) (*models.Location, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	loc := &models.Location{
		Title:   title,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		Zip:     req.Zip,
	}
	if err := s.DB.Create(loc).Error; err != nil {
		return nil, err
	}
	return loc, nil
}

// Update overwrites only the fields present in the request; absent fields
// keep their stored value. Returns gorm.ErrRecordNotFound for an unknown id.
func (s *LocationService) Update(id uint, req *dtos.LocationUpdateRequest) error {
	var loc models.Location
	if err := s.DB.First(&loc, id).Error; err != nil {
		return err
	}
	if req.Title != nil {
		loc.Title = *req.Title
	}
	if req.City != nil {
		loc.City = *req.City
	}
	if req.State != nil {
		loc.State = *req.State
	}
	if req.Country != nil {
		loc.Country = *req.Country
	}
	if req.Zip != nil {
		loc.Zip = *req.Zip
	}
	return s.DB.Save(&loc).Error
}
