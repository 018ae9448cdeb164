package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentdesk/job-openings-backend/internal/dtos"
	"github.com/talentdesk/job-openings-backend/internal/models"
	"gorm.io/gorm"
)

func TestLocationService_Create(t *testing.T) {
	t.Run("stores all supplied fields", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewLocationService(db)

		loc, err := svc.Create(&dtos.LocationCreateRequest{
			Title:   " Berlin Office ",
			City:    "Berlin",
			Country: "DE",
			Zip:     "10115",
		})
		require.NoError(t, err)
		assert.Equal(t, "Berlin Office", loc.Title)

		var stored models.Location
		require.NoError(t, db.First(&stored, loc.ID).Error)
		assert.Equal(t, "Berlin", stored.City)
		assert.Equal(t, "DE", stored.Country)
		assert.Equal(t, "10115", stored.Zip)
		assert.Empty(t, stored.State)
	})

	t.Run("rejects blank titles without persisting", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewLocationService(db)

		_, err := svc.Create(&dtos.LocationCreateRequest{Title: "   ", City: "Berlin"})
		assert.ErrorIs(t, err, ErrTitleRequired)

		var count int64
		require.NoError(t, db.Model(&models.Location{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestLocationService_Update(t *testing.T) {
	t.Run("unknown id reports not found", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewLocationService(db)

		err := svc.Update(7, &dtos.LocationUpdateRequest{})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("absent fields keep stored values, present fields replace them", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewLocationService(db)

		loc, err := svc.Create(&dtos.LocationCreateRequest{
			Title: "Berlin Office", City: "Berlin", Country: "DE", Zip: "10115",
		})
		require.NoError(t, err)

		city := "Hamburg"
		zip := ""
		require.NoError(t, svc.Update(loc.ID, &dtos.LocationUpdateRequest{City: &city, Zip: &zip}))

		var stored models.Location
		require.NoError(t, db.First(&stored, loc.ID).Error)
		assert.Equal(t, "Berlin Office", stored.Title)
		assert.Equal(t, "Hamburg", stored.City)
		assert.Equal(t, "DE", stored.Country)
		// explicitly sent empty string clears, unlike an absent field
		assert.Empty(t, stored.Zip)
	})
}

func TestLocationService_List(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db)

	dep, loc := seedRefs(t, db)
	empty, err := svc.Create(&dtos.LocationCreateRequest{Title: "Berlin Office", City: "Berlin"})
	require.NoError(t, err)

	_, err = NewJobService(db).Create(&dtos.JobCreateRequest{
		Title:        "Backend Engineer",
		LocationID:   loc.ID,
		DepartmentID: dep.ID,
	})
	require.NoError(t, err)

	rows, err := svc.List()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, loc.ID, rows[0].ID)
	assert.Equal(t, "Remote", rows[0].Title)
	assert.EqualValues(t, 1, rows[0].Count)

	assert.Equal(t, empty.ID, rows[1].ID)
	assert.Equal(t, "Berlin", rows[1].City)
	assert.Zero(t, rows[1].Count)
}

func TestLocationService_DeleteReferencedIsRejected(t *testing.T) {
	db := newTestDB(t)
	dep, loc := seedRefs(t, db)

	_, err := NewJobService(db).Create(&dtos.JobCreateRequest{
		Title:        "Backend Engineer",
		LocationID:   loc.ID,
		DepartmentID: dep.ID,
	})
	require.NoError(t, err)

	err = db.Delete(&models.Location{}, loc.ID).Error
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Location{}).Where("id = ?", loc.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
