package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/dberrors"
)

func TestEnrollmentRepository_LockPair(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEnrollmentRepository(mock)

	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtextextended\(\$1, 0\)\)`).
		WithArgs("enrollment:1:2").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))

	require.NoError(t, repo.LockPair(context.Background(), 1, 2))
}

func TestEnrollmentRepository_FindActive(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEnrollmentRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`FROM enrollments WHERE course_id = \$1 AND is_deleted = \$2 AND student_id = \$3 LIMIT 1`).
		WithArgs(int64(1), false, int64(2)).
		WillReturnRows(pgxmock.NewRows(enrollmentColumns).AddRow(int64(10), int64(2), int64(1), false, false, now, now))

	e, err := repo.FindActive(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), e.ID)
	assert.Equal(t, models.EnrollmentActive, e.State())
}

func TestEnrollmentRepository_FindActive_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEnrollmentRepository(mock)

	mock.ExpectQuery(`FROM enrollments`).
		WithArgs(int64(1), false, int64(2)).
		WillReturnRows(pgxmock.NewRows(enrollmentColumns))

	_, err := repo.FindActive(context.Background(), 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestEnrollmentRepository_FindLatestDeleted(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEnrollmentRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`FROM enrollments WHERE .* ORDER BY updated_at DESC, id DESC LIMIT 1`).
		WithArgs(int64(1), true, int64(2)).
		WillReturnRows(pgxmock.NewRows(enrollmentColumns).AddRow(int64(11), int64(2), int64(1), true, true, now, now))

	e, err := repo.FindLatestDeleted(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentCompletedUnassigned, e.State())
}

func TestEnrollmentRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEnrollmentRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO enrollments \(student_id,course_id,completed,is_deleted\)`).
		WithArgs(int64(2), int64(1), false, false).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(12), now, now))

	e := &models.Enrollment{StudentID: 2, CourseID: 1}
	require.NoError(t, repo.Create(context.Background(), e))
	assert.Equal(t, int64(12), e.ID)
}

func TestEnrollmentRepository_Create_ConstraintErrors(t *testing.T) {
	cases := []struct {
		name string
		err  *pgconn.PgError
		want error
	}{
		{"active pair", &pgconn.PgError{Code: "23505", ConstraintName: dberrors.EnrollmentsActivePairKey}, ErrDuplicateActiveEnrollment},
		{"missing student", &pgconn.PgError{Code: "23503", ConstraintName: dberrors.EnrollmentsStudentFKey}, apperrors.ErrStudentNotFound},
		{"missing course", &pgconn.PgError{Code: "23503", ConstraintName: dberrors.EnrollmentsCourseFKey}, apperrors.ErrCourseNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewEnrollmentRepository(mock)

			mock.ExpectQuery(`INSERT INTO enrollments`).
				WithArgs(int64(2), int64(1), false, false).
				WillReturnError(tc.err)

			err := repo.Create(context.Background(), &models.Enrollment{StudentID: 2, CourseID: 1})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEnrollmentRepository_SetDeleted(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEnrollmentRepository(mock)

	mock.ExpectExec(`UPDATE enrollments SET is_deleted = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(true, int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE enrollments SET`).
		WithArgs(false, int64(11)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: dberrors.EnrollmentsActivePairKey})
	mock.ExpectExec(`UPDATE enrollments SET`).
		WithArgs(true, int64(12)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ctx := context.Background()
	require.NoError(t, repo.SetDeleted(ctx, 10, true))
	assert.ErrorIs(t, repo.SetDeleted(ctx, 11, false), ErrDuplicateActiveEnrollment)
	assert.ErrorIs(t, repo.SetDeleted(ctx, 12, true), apperrors.ErrEnrollmentNotFound)
}
