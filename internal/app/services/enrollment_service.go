package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/repositories"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/logger"
	"github.com/yigit/university/internal/pkg/validation"
)

// Enrollment workflow messages
const (
	MsgAlreadyAssigned = "Student is already assigned to course"
	MsgNotAssigned     = "Student is not assigned to course"
)

// EnrollmentService toggles the assignment of students to courses.
// Enrollment rows are never hard-deleted here: unassign soft-deletes the
// active row and a later assign revives the most recently updated one.
type EnrollmentService interface {
	AssignStudent(ctx context.Context, courseID, studentID int64) error
	UnassignStudent(ctx context.Context, courseID, studentID int64) error
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	repos *repositories.Repositories
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(repos *repositories.Repositories) EnrollmentService {
	return &enrollmentServiceImpl{repos: repos}
}

// lockPair checks both ends of the pair exist and serialises concurrent
// writers of the pair for the rest of the transaction.
func lockPair(ctx context.Context, tx *repositories.Repositories, courseID, studentID int64) error {
	if _, err := tx.Courses.GetByID(ctx, courseID); err != nil {
		return err
	}
	if _, err := tx.Students.GetByID(ctx, studentID); err != nil {
		return err
	}
	return tx.Enrollments.LockPair(ctx, courseID, studentID)
}

// translateEnrollmentError maps store errors onto client-facing errors
func translateEnrollmentError(err error, studentID int64) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrDuplicateActiveEnrollment):
		return apperrors.NewConflictError(MsgAlreadyAssigned)
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return apperrors.NewFieldError("student", validation.InvalidPKMessage(studentID))
	}
	return err
}

// AssignStudent makes the student an active member of the course
func (s *enrollmentServiceImpl) AssignStudent(ctx context.Context, courseID, studentID int64) error {
	err := s.repos.WithinTransaction(ctx, func(ctx context.Context, tx *repositories.Repositories) error {
		if err := lockPair(ctx, tx, courseID, studentID); err != nil {
			return err
		}

		if _, err := tx.Enrollments.FindActive(ctx, courseID, studentID); err == nil {
			return apperrors.NewConflictError(MsgAlreadyAssigned)
		} else if !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
			return err
		}

		previous, err := tx.Enrollments.FindLatestDeleted(ctx, courseID, studentID)
		switch {
		case err == nil:
			if err := tx.Enrollments.SetDeleted(ctx, previous.ID, false); err != nil {
				return err
			}
			logger.Ctx(ctx).Debug().
				Int64("enrollmentID", previous.ID).
				Str("from", string(previous.State())).
				Msg("Enrollment revived")
			return nil
		case errors.Is(err, apperrors.ErrEnrollmentNotFound):
			enrollment := &models.Enrollment{CourseID: courseID, StudentID: studentID}
			if err := tx.Enrollments.Create(ctx, enrollment); err != nil {
				return err
			}
			logger.Ctx(ctx).Debug().
				Int64("enrollmentID", enrollment.ID).
				Str("state", string(enrollment.State())).
				Msg("Enrollment created")
			return nil
		default:
			return fmt.Errorf("error finding previous enrollment: %w", err)
		}
	})
	return translateEnrollmentError(err, studentID)
}

// UnassignStudent soft-deletes the active enrollment of the pair
func (s *enrollmentServiceImpl) UnassignStudent(ctx context.Context, courseID, studentID int64) error {
	err := s.repos.WithinTransaction(ctx, func(ctx context.Context, tx *repositories.Repositories) error {
		if err := lockPair(ctx, tx, courseID, studentID); err != nil {
			return err
		}

		active, err := tx.Enrollments.FindActive(ctx, courseID, studentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrEnrollmentNotFound) {
				return apperrors.NewNonFieldError(MsgNotAssigned)
			}
			return err
		}

		if err := tx.Enrollments.SetDeleted(ctx, active.ID, true); err != nil {
			return err
		}
		logger.Ctx(ctx).Debug().
			Int64("enrollmentID", active.ID).
			Str("from", string(active.State())).
			Msg("Enrollment soft-deleted")
		return nil
	})
	return translateEnrollmentError(err, studentID)
}
