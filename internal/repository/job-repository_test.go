package repository

import (
	"testing"
	"time"

	"github.com/CampusLancer/admin_service/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestJobModerate_MissingJob(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "jobs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	now := time.Now()
	err := repo.Moderate(404, domain.JobActive, nil, &now)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobModerate_Approve(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "jobs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	now := time.Now()
	notes := "looks good"
	err := repo.Moderate(7, domain.JobActive, &notes, &now)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobToggleFeatured_FlipsCurrentValue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_featured"}).AddRow(7, false))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "jobs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	featured, err := repo.ToggleFeatured(7)

	require.NoError(t, err)
	assert.True(t, featured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobToggleUrgent_UnknownJob(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_urgent"}))

	_, err := repo.ToggleUrgent(404)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
