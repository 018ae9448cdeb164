package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/talentdesk/job-openings-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with foreign keys
// enforced. Capping the pool at one connection keeps every gorm call on
// the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Department{}, &models.Location{}, &models.Job{}))
	return db
}

// seedRefs inserts one department and one location to hang jobs off.
func seedRefs(t *testing.T, db *gorm.DB) (*models.Department, *models.Location) {
	t.Helper()

	dep := &models.Department{Title: "Engineering"}
	require.NoError(t, db.Create(dep).Error)
	loc := &models.Location{Title: "Remote", Country: "US"}
	require.NoError(t, db.Create(loc).Error)
	return dep, loc
}
