package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/talentdesk/job-openings-backend/internal/dtos"
	"github.com/talentdesk/job-openings-backend/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB

	// Guards the read-last-code-then-insert span in Create. Code allocation
	// derives the next code from the newest stored row, so two unserialized
	// creates would read the same row and produce duplicate codes.
	mu sync.Mutex
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// checkRefs verifies both foreign keys point at existing rows. Every
// operation that writes a job goes through here.
func (s *JobService) checkRefs(departmentID, locationID uint) error {
	var n int64
	if err := s.DB.Model(&models.Department{}).Where("id = ?", departmentID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrInvalidDepartment
	}
	if err := s.DB.Model(&models.Location{}).Where("id = ?", locationID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrInvalidLocation
	}
	return nil
}

func (s *JobService) Create(req *dtos.JobCreateRequest) (*models.Job, error) {
	if err := s.checkRefs(req.DepartmentID, req.LocationID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var last models.Job
	lastCode := ""
	err := s.DB.Last(&last).Error
	switch {
	case err == nil:
		lastCode = last.Code
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first job ever, NextJobCode starts the sequence
	default:
		return nil, err
	}

	code, err := NextJobCode(lastCode)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		Code:         code,
		Title:        req.Title,
		Description:  req.Description,
		LocationID:   req.LocationID,
		DepartmentID: req.DepartmentID,
		PostedDate:   time.Now().UTC(),
		ClosingDate:  req.ClosingDate,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	// Reload with associations so the caller gets the full record back.
	if err := s.DB.Preload("Location").Preload("Department").First(job, job.ID).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update keeps title/description when absent, always re-points both foreign
// keys and replaces closingDate wholesale. Returns gorm.ErrRecordNotFound
// for an unknown job id.
func (s *JobService) Update(id uint, req *dtos.JobUpdateRequest) error {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		return err
	}
	if err := s.checkRefs(req.DepartmentID, req.LocationID); err != nil {
		return err
	}
	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	job.DepartmentID = req.DepartmentID
	job.LocationID = req.LocationID
	job.ClosingDate = req.ClosingDate
	return s.DB.Save(&job).Error
}

// Get returns the nested detail shape with location and department resolved.
func (s *JobService) Get(id uint) (*dtos.JobDetails, error) {
	var job models.Job
	if err := s.DB.Preload("Location").Preload("Department").First(&job, id).Error; err != nil {
		return nil, err
	}
	return &dtos.JobDetails{
		ID:          job.ID,
		Code:        job.Code,
		Title:       job.Title,
		Description: job.Description,
		Location: dtos.LocationDetail{
			ID:      job.Location.ID,
			Title:   job.Location.Title,
			City:    job.Location.City,
			State:   job.Location.State,
			Country: job.Location.Country,
			Zip:     job.Location.Zip,
		},
		Department: dtos.DepartmentDetail{
			ID:    job.Department.ID,
			Title: job.Department.Title,
		},
		PostedDate:  job.PostedDate,
		ClosingDate: job.ClosingDate,
	}, nil
}

func (s *JobService) Delete(id uint) error {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		return err
	}
	return s.DB.Delete(&job).Error
}

// escapeLike makes LIKE match s literally: % and _ in the search text are
// characters to find, not wildcards.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// List runs the combined search/filter/paginate query. The text filter
// matches the trimmed query case-insensitively as a substring of the job
// title, job description, location title or department title; the id
// filters compose with AND. Total counts matches before paging.
func (s *JobService) List(req *dtos.JobListRequest) (*dtos.JobListResponse, error) {
	// Fresh query per finisher; gorm statements are not reusable after
	// Count/Scan.
	base := func() *gorm.DB {
		tx := s.DB.Model(&models.Job{}).
			Joins("JOIN locations ON locations.id = jobs.location_id").
			Joins("JOIN departments ON departments.id = jobs.department_id")
		if q := strings.TrimSpace(req.Q); q != "" {
			like := "%" + escapeLike(strings.ToLower(q)) + "%"
			tx = tx.Where(
				`LOWER(COALESCE(jobs.title, '')) LIKE ? ESCAPE '\' OR LOWER(COALESCE(jobs.description, '')) LIKE ? ESCAPE '\' OR LOWER(COALESCE(locations.title, '')) LIKE ? ESCAPE '\' OR LOWER(COALESCE(departments.title, '')) LIKE ? ESCAPE '\'`,
				like, like, like, like,
			)
		}
		if req.LocationID != nil {
			tx = tx.Where("jobs.location_id = ?", *req.LocationID)
		}
		if req.DepartmentID != nil {
			tx = tx.Where("jobs.department_id = ?", *req.DepartmentID)
		}
		return tx
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, err
	}

	pageNo := req.PageNo
	if pageNo < 1 {
		pageNo = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > 200 {
		pageSize = 200
	}

	items := []dtos.JobListItem{}
	err := base().
		Select("jobs.id, jobs.code, jobs.title, jobs.description, locations.title AS location, departments.title AS department, jobs.posted_date, jobs.closing_date").
		Order("jobs.posted_date DESC, jobs.id DESC").
		Offset((pageNo - 1) * pageSize).
		Limit(pageSize).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return &dtos.JobListResponse{Total: total, Data: items}, nil
}
