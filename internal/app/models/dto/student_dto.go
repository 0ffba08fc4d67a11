package dto

import "github.com/yigit/university/internal/app/models"

// CreateStudentRequest represents student creation data. Values are
// validated after trimming surrounding whitespace.
type CreateStudentRequest struct {
	FirstName NullableString `json:"first_name" binding:"omitempty,max=20" swaggertype:"string" example:"Tom1"`
	LastName  NullableString `json:"last_name" binding:"omitempty,max=20" swaggertype:"string" example:"Bri1"`
	Email     NullableString `json:"email" binding:"omitempty,email" swaggertype:"string" example:"bri1@gmail.com"`
}

// StudentSummaryResponse is the JSON form of a students report row
type StudentSummaryResponse struct {
	ID               int64  `json:"id" example:"1"`
	FullName         string `json:"full_name" example:"Tom1 Bri1"`
	CoursesAssigned  int64  `json:"courses_assigned" example:"2"`
	CoursesCompleted int64  `json:"courses_completed" example:"1"`
}

// NewStudentSummaryResponse converts a report row into a StudentSummaryResponse
func NewStudentSummaryResponse(rep *models.StudentReport) StudentSummaryResponse {
	return StudentSummaryResponse{
		ID:               rep.StudentID,
		FullName:         rep.FullName,
		CoursesAssigned:  rep.CoursesAssigned,
		CoursesCompleted: rep.CoursesCompleted,
	}
}

// StudentResponse is returned after creating a student
type StudentResponse struct {
	ID        int64  `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"Tom1"`
	LastName  string `json:"last_name" example:"Bri1"`
	Email     string `json:"email" example:"bri1@gmail.com"`
}

// NewStudentResponse converts a student model into a StudentResponse
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
	}
}
