package services

import (
	"context"
	"fmt"

	"github.com/yigit/university/internal/app/auth"
	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/app/repositories"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/logger"
	"github.com/yigit/university/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations.
// Courses are returned as report rows so they carry the live student count.
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.CourseReport, error)
	GetCourse(ctx context.Context, id int64) (*models.CourseReport, error)
	// AuthorizeCreate reports whether the caller may create courses at all.
	AuthorizeCreate(ctx context.Context) error
	CreateCourse(ctx context.Context, req dto.CourseRequest) (*models.CourseReport, error)
	// UpdateCourse applies req to the course. With partial set, absent fields
	// keep their value; otherwise every required field must be present.
	UpdateCourse(ctx context.Context, id int64, req dto.CourseRequest, partial bool) (*models.CourseReport, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	repos  *repositories.Repositories
	policy auth.CoursePolicy
}

// NewCourseService creates a new course service instance
func NewCourseService(repos *repositories.Repositories, policy auth.CoursePolicy) CourseService {
	return &courseServiceImpl{
		repos:  repos,
		policy: policy,
	}
}

// applyCourseRequest copies the fields of req onto course
func applyCourseRequest(course *models.Course, req dto.CourseRequest, partial bool) error {
	verr := apperrors.NewValidationError()

	if v, ok := textField(verr, "name", req.Name, !partial); ok {
		if v == "" {
			verr.Add("name", validation.MsgBlank)
		} else {
			course.Name = v
		}
	}

	if v, ok := textField(verr, "description", req.Description, false); ok {
		course.Description = v
	} else if !partial && !req.Description.Set {
		course.Description = ""
	}

	applyDate := func(field string, value dto.NullableString, dst *models.Date) {
		v, ok := textField(verr, field, value, !partial)
		if !ok {
			return
		}
		d, err := models.ParseDate(v)
		if err != nil {
			verr.Add(field, validation.MsgInvalidDate)
			return
		}
		*dst = d
	}
	applyDate("start_date", req.StartDate, &course.StartDate)
	applyDate("end_date", req.EndDate, &course.EndDate)

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ListCourses returns every course, newest first
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]models.CourseReport, error) {
	return s.repos.Reports.CourseReports(ctx)
}

// GetCourse returns one course
func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*models.CourseReport, error) {
	return s.repos.Reports.CourseReportByID(ctx, id)
}

// AuthorizeCreate delegates to the course policy
func (s *courseServiceImpl) AuthorizeCreate(ctx context.Context) error {
	return s.policy.CanCreateCourse(ctx)
}

// CreateCourse stores a new course when the policy allows it
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req dto.CourseRequest) (*models.CourseReport, error) {
	if err := s.AuthorizeCreate(ctx); err != nil {
		return nil, err
	}

	course := &models.Course{}
	if err := applyCourseRequest(course, req, false); err != nil {
		return nil, err
	}
	if err := s.repos.Courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return s.repos.Reports.CourseReportByID(ctx, course.ID)
}

// UpdateCourse updates a course and returns its fresh report row
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req dto.CourseRequest, partial bool) (*models.CourseReport, error) {
	course, err := s.repos.Courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyCourseRequest(course, req, partial); err != nil {
		return nil, err
	}
	if err := s.repos.Courses.Update(ctx, course); err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Info().Int64("courseID", id).Bool("partial", partial).Msg("Course updated")
	return s.repos.Reports.CourseReportByID(ctx, id)
}

// DeleteCourse removes a course together with its enrollments
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.repos.Courses.Delete(ctx, id); err != nil {
		return err
	}
	logger.Ctx(ctx).Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}
