package models

import (
	"time"
)

type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title string `gorm:"size:255;not null" json:"title"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Department -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title   string `gorm:"size:255;not null" json:"title"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`

	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Sequential human-readable identifier, assigned once at creation.
	Code string `gorm:"uniqueIndex;not null" json:"code"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	// Referenced rows cannot be deleted while a job still points at them.
	LocationID uint     `gorm:"not null" json:"locationId"`
	Location   Location `gorm:"constraint:OnDelete:RESTRICT" json:"location"`

	DepartmentID uint       `gorm:"not null" json:"departmentId"`
	Department   Department `gorm:"constraint:OnDelete:RESTRICT" json:"department"`

	PostedDate  time.Time  `gorm:"not null" json:"postedDate"`
	ClosingDate *time.Time `json:"closingDate"`
}
