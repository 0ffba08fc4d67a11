package dto

import (
	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/validation"
)

// CourseResponse is the public representation of a course with its live student count
type CourseResponse struct {
	Name          string      `json:"name" example:"Course1"`
	StartDate     models.Date `json:"start_date" swaggertype:"string" example:"2019-11-07"`
	EndDate       models.Date `json:"end_date" swaggertype:"string" example:"2019-11-11"`
	StudentsCount int64       `json:"students_count" example:"2"`
}

// NewCourseResponse converts a report row into a CourseResponse
func NewCourseResponse(rep *models.CourseReport) CourseResponse {
	return CourseResponse{
		Name:          rep.Name,
		StartDate:     rep.StartDate,
		EndDate:       rep.EndDate,
		StudentsCount: rep.StudentsCount,
	}
}

// NewCourseListResponse converts report rows into CourseResponses, keeping order
func NewCourseListResponse(reps []models.CourseReport) []CourseResponse {
	out := make([]CourseResponse, 0, len(reps))
	for i := range reps {
		out = append(out, NewCourseResponse(&reps[i]))
	}
	return out
}

// CourseRequest carries course fields. On PATCH absent fields keep their
// current value; on PUT name, start_date and end_date are required. A field
// sent as null is rejected.
type CourseRequest struct {
	Name        NullableString `json:"name" binding:"omitempty,max=100" swaggertype:"string" example:"Course1"`
	Description NullableString `json:"description" swaggertype:"string" example:"Introductory course"`
	StartDate   NullableString `json:"start_date" binding:"omitempty,datetime=2006-01-02" swaggertype:"string" example:"2019-11-07"`
	EndDate     NullableString `json:"end_date" binding:"omitempty,datetime=2006-01-02" swaggertype:"string" example:"2019-11-11"`
}

// AssignStudentRequest names the student to assign to or unassign from a course
type AssignStudentRequest struct {
	Student PrimaryKey `json:"student" swaggertype:"integer" example:"1"`
}

// StudentID returns the referenced student id, or a field error when the key
// is missing or null.
func (r AssignStudentRequest) StudentID() (int64, error) {
	switch {
	case !r.Student.Set:
		return 0, apperrors.NewFieldError("student", validation.MsgRequired)
	case r.Student.Null:
		return 0, apperrors.NewFieldError("student", validation.MsgNull)
	}
	return r.Student.Value, nil
}
