package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/repositories"
	"github.com/yigit/university/internal/app/services"
	"github.com/yigit/university/internal/pkg/apperrors"
)

func requireNonFieldError(t *testing.T, err error, msg string) {
	t.Helper()
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.Equal(t, []string{msg}, verr.Fields[apperrors.NonFieldErrorsKey])
}

func TestAssignStudent_TwiceIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Enrollments.AssignStudent(ctx, f.course.ID, f.tom1.ID))

	err := f.svc.Enrollments.AssignStudent(ctx, f.course.ID, f.tom1.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.EqualError(t, err, services.MsgAlreadyAssigned)

	rows := f.store.EnrollmentsFor(f.course.ID, f.tom1.ID)
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, activeCount(rows))
}

func TestAssignUnassignAssign_RevivesRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Enrollments.AssignStudent(ctx, f.course.ID, f.tom1.ID))
	require.NoError(t, f.svc.Enrollments.UnassignStudent(ctx, f.course.ID, f.tom1.ID))
	require.NoError(t, f.svc.Enrollments.AssignStudent(ctx, f.course.ID, f.tom1.ID))

	rows := f.store.EnrollmentsFor(f.course.ID, f.tom1.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, models.EnrollmentActive, rows[0].State())
}

func TestUnassignStudent_WithoutAssign(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Enrollments.UnassignStudent(context.Background(), f.course.ID, f.tom1.ID)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	requireNonFieldError(t, err, services.MsgNotAssigned)
	assert.Empty(t, f.store.Enrollments())
}

func TestUnassignStudent_TwiceIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Enrollments.AssignStudent(ctx, f.course.ID, f.tom1.ID))
	require.NoError(t, f.svc.Enrollments.UnassignStudent(ctx, f.course.ID, f.tom1.ID))

	err := f.svc.Enrollments.UnassignStudent(ctx, f.course.ID, f.tom1.ID)
	requireNonFieldError(t, err, services.MsgNotAssigned)

	rows := f.store.EnrollmentsFor(f.course.ID, f.tom1.ID)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsDeleted)
}

func TestUnassignStudent_KeepsCompleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.AddEnrollment(models.Enrollment{CourseID: f.course.ID, StudentID: f.tom1.ID, Completed: true})

	require.NoError(t, f.svc.Enrollments.UnassignStudent(ctx, f.course.ID, f.tom1.ID))

	rows := f.store.EnrollmentsFor(f.course.ID, f.tom1.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, models.EnrollmentCompletedUnassigned, rows[0].State())

	require.NoError(t, f.svc.Enrollments.AssignStudent(ctx, f.course.ID, f.tom1.ID))
	rows = f.store.EnrollmentsFor(f.course.ID, f.tom1.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, models.EnrollmentCompleted, rows[0].State())
}

func TestAssignStudent_RevivesMostRecentlyUpdated(t *testing.T) {
	f := newFixture(t)
	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	older := f.store.AddEnrollment(models.Enrollment{
		CourseID: f.course.ID, StudentID: f.tom1.ID, IsDeleted: true,
		CreatedAt: base, UpdatedAt: base.Add(time.Hour),
	})
	newer := f.store.AddEnrollment(models.Enrollment{
		CourseID: f.course.ID, StudentID: f.tom1.ID, IsDeleted: true, Completed: true,
		CreatedAt: base, UpdatedAt: base.Add(2 * time.Hour),
	})

	require.NoError(t, f.svc.Enrollments.AssignStudent(context.Background(), f.course.ID, f.tom1.ID))

	rows := f.store.EnrollmentsFor(f.course.ID, f.tom1.ID)
	require.Len(t, rows, 2)
	for _, e := range rows {
		switch e.ID {
		case older.ID:
			assert.True(t, e.IsDeleted)
		case newer.ID:
			assert.False(t, e.IsDeleted)
			assert.True(t, e.Completed)
		}
	}
}

func TestAssignStudent_UnknownCourse(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Enrollments.AssignStudent(context.Background(), 9999, f.tom1.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Empty(t, f.store.Enrollments())
}

func TestAssignStudent_UnknownStudent(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Enrollments.AssignStudent(context.Background(), f.course.ID, 9999)
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{`Invalid pk "9999" - object does not exist.`}, verr.Fields["student"])
	assert.Empty(t, f.store.Enrollments())
}

func TestAssignStudent_Concurrent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f.svc.Enrollments.AssignStudent(ctx, f.course.ID, f.tom2.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, apperrors.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)
	assert.Equal(t, 1, activeCount(f.store.EnrollmentsFor(f.course.ID, f.tom2.ID)))
}

// blindEnrollments never sees active rows, as a writer racing another
// transaction would before the unique index rejects its insert.
type blindEnrollments struct {
	repositories.EnrollmentStore
}

func (blindEnrollments) FindActive(ctx context.Context, courseID, studentID int64) (*models.Enrollment, error) {
	return nil, apperrors.ErrEnrollmentNotFound
}

type inlineTx struct {
	repos *repositories.Repositories
}

func (t *inlineTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *repositories.Repositories) error) error {
	return fn(ctx, t.repos)
}

func TestAssignStudent_UniqueIndexReportedAsConflict(t *testing.T) {
	f := newFixture(t)
	f.store.AddEnrollment(models.Enrollment{CourseID: f.course.ID, StudentID: f.tom1.ID})

	base := f.store.Repositories()
	tx := &inlineTx{}
	repos := repositories.New(base.Students, base.Courses, blindEnrollments{base.Enrollments}, base.Reports, tx)
	tx.repos = repos

	err := services.NewEnrollmentService(repos).AssignStudent(context.Background(), f.course.ID, f.tom1.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.EqualError(t, err, services.MsgAlreadyAssigned)
	assert.Len(t, f.store.EnrollmentsFor(f.course.ID, f.tom1.ID), 1)
}
