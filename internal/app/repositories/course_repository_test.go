package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/pkg/apperrors"
)

func TestCourseRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCourseRepository(mock)
	now := time.Now()
	start := models.NewDate(2019, time.November, 7)
	end := models.NewDate(2019, time.November, 11)

	mock.ExpectQuery(`FROM courses WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(courseColumns).AddRow(int64(5), "Course1", "", start.Time, end.Time, now, now))

	c, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Course1", c.Name)
	assert.Equal(t, "2019-11-07", c.StartDate.String())
	assert.Equal(t, "2019-11-11", c.EndDate.String())
}

func TestCourseRepository_GetByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCourseRepository(mock)

	mock.ExpectQuery(`FROM courses WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows(courseColumns))

	_, err := repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCourseRepository(mock)
	now := time.Now()
	c := &models.Course{
		Name:      "Course1",
		StartDate: models.NewDate(2019, time.November, 7),
		EndDate:   models.NewDate(2019, time.November, 11),
	}

	mock.ExpectQuery(`INSERT INTO courses \(name,description,start_date,end_date\)`).
		WithArgs("Course1", "", c.StartDate.Time, c.EndDate.Time).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

	require.NoError(t, repo.Create(context.Background(), c))
	assert.Equal(t, int64(1), c.ID)
}

func TestCourseRepository_Update(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCourseRepository(mock)
	now := time.Now()
	c := &models.Course{
		ID:          4,
		Name:        "Renamed",
		Description: "desc",
		StartDate:   models.NewDate(2019, time.November, 7),
		EndDate:     models.NewDate(2019, time.November, 11),
	}

	// SetMap renders columns in key order
	mock.ExpectQuery(`UPDATE courses SET description = \$1, end_date = \$2, name = \$3, start_date = \$4, updated_at = NOW\(\) WHERE id = \$5 RETURNING updated_at`).
		WithArgs("desc", c.EndDate.Time, "Renamed", c.StartDate.Time, int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))

	require.NoError(t, repo.Update(context.Background(), c))
	assert.Equal(t, now, c.UpdatedAt)
}

func TestCourseRepository_Update_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCourseRepository(mock)

	mock.ExpectQuery(`UPDATE courses SET`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}))

	err := repo.Update(context.Background(), &models.Course{ID: 4})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseRepository_Delete_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCourseRepository(mock)

	mock.ExpectExec(`DELETE FROM courses WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), apperrors.ErrCourseNotFound)
}
