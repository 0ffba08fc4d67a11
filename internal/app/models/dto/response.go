package dto

// MessageResponse is the body of successful enrollment actions
type MessageResponse struct {
	Message string `json:"message" example:"Student was assigned to course"`
}

// Enrollment action results
const (
	MsgStudentAssigned   = "Student was assigned to course"
	MsgStudentUnassigned = "Student was unassigned from course"
)

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
