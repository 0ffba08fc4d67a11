package services

import (
	"github.com/yigit/university/internal/app/auth"
	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/app/repositories"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/validation"
)

// Services groups the business services used by the controllers
type Services struct {
	Students    StudentService
	Courses     CourseService
	Enrollments EnrollmentService
	Reports     ReportService
}

// NewServices wires every service to the given repositories and policy
func NewServices(repos *repositories.Repositories, policy auth.CoursePolicy) *Services {
	return &Services{
		Students:    NewStudentService(repos),
		Courses:     NewCourseService(repos, policy),
		Enrollments: NewEnrollmentService(repos),
		Reports:     NewReportService(repos),
	}
}

// textField returns the trimmed value of a request field. A null field, or
// an absent one when required, is recorded on verr and reported as not ok.
func textField(verr *apperrors.ValidationError, name string, value dto.NullableString, required bool) (string, bool) {
	switch {
	case value.Null:
		verr.Add(name, validation.MsgNull)
		return "", false
	case !value.Set:
		if required {
			verr.Add(name, validation.MsgRequired)
		}
		return "", false
	}
	return value.Trimmed(), true
}

// requiredText is textField for required fields that may not be blank
func requiredText(verr *apperrors.ValidationError, name string, value dto.NullableString) (string, bool) {
	v, ok := textField(verr, name, value, true)
	if ok && v == "" {
		verr.Add(name, validation.MsgBlank)
		return "", false
	}
	return v, ok
}
