package auth

import (
	"context"

	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/logger"
)

// ErrCourseCreationDenied is returned for every course creation attempt through the API
var ErrCourseCreationDenied = apperrors.NewForbiddenError(dto.DetailPermissionDenied)

// CoursePolicy decides which course operations API callers may perform
type CoursePolicy interface {
	// CanCreateCourse returns nil when the caller may create a course
	CanCreateCourse(ctx context.Context) error
}

// closedCreationPolicy rejects course creation. Courses are provisioned by
// administrators through the seeder or directly in the database.
type closedCreationPolicy struct{}

// NewCoursePolicy returns the policy used by the API
func NewCoursePolicy() CoursePolicy {
	return closedCreationPolicy{}
}

func (closedCreationPolicy) CanCreateCourse(ctx context.Context) error {
	logger.Ctx(ctx).Debug().Msg("Course creation rejected by policy")
	return ErrCourseCreationDenied
}
