package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/app/repositories"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/logger"
	"github.com/yigit/university/internal/pkg/validation"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	GetStudentSummary(ctx context.Context, id int64) (*models.StudentReport, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	repos *repositories.Repositories
}

// NewStudentService creates a new student service instance
func NewStudentService(repos *repositories.Repositories) StudentService {
	return &studentServiceImpl{repos: repos}
}

// validateStudent checks presence and blankness of every field and returns
// the student to insert with trimmed values. Length and email format are
// enforced by the request binding rules.
func (s *studentServiceImpl) validateStudent(req dto.CreateStudentRequest) (*models.Student, error) {
	verr := apperrors.NewValidationError()
	student := &models.Student{}

	for _, f := range []struct {
		name  string
		value dto.NullableString
		dst   *string
	}{
		{"first_name", req.FirstName, &student.FirstName},
		{"last_name", req.LastName, &student.LastName},
		{"email", req.Email, &student.Email},
	} {
		if v, ok := requiredText(verr, f.name, f.value); ok {
			*f.dst = v
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return student, nil
}

// CreateStudent validates and stores a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	student, err := s.validateStudent(req)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Students.Create(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewFieldError("email", validation.MsgEmailTaken)
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	logger.Ctx(ctx).Info().Int64("studentID", student.ID).Msg("Student created")
	return student, nil
}

// GetStudentSummary returns the report row of one student
func (s *studentServiceImpl) GetStudentSummary(ctx context.Context, id int64) (*models.StudentReport, error) {
	return s.repos.Reports.StudentReportByID(ctx, id)
}

// DeleteStudent removes a student together with its enrollments
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.repos.Students.Delete(ctx, id); err != nil {
		return err
	}
	logger.Ctx(ctx).Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}
