package models

import "time"

// Enrollment links one student to one course. Rows are never edited directly:
// assign creates or revives a row, unassign soft-deletes it.
type Enrollment struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"student" db:"student_id"`
	CourseID  int64     `json:"course" db:"course_id"`
	Completed bool      `json:"completed" db:"completed"`
	IsDeleted bool      `json:"is_deleted" db:"is_deleted"`
	CreatedAt time.Time `json:"created" db:"created_at"`
	UpdatedAt time.Time `json:"updated" db:"updated_at"`
}

// EnrollmentState is the status derived from the completed and is_deleted flags
type EnrollmentState string

const (
	EnrollmentActive              EnrollmentState = "active"
	EnrollmentCompleted           EnrollmentState = "completed"
	EnrollmentUnassigned          EnrollmentState = "unassigned"
	EnrollmentCompletedUnassigned EnrollmentState = "completed-unassigned"
)

// IsActive reports whether the enrollment is not soft-deleted
func (e *Enrollment) IsActive() bool {
	return !e.IsDeleted
}

// State folds both flags into a single status
func (e *Enrollment) State() EnrollmentState {
	switch {
	case !e.IsDeleted && e.Completed:
		return EnrollmentCompleted
	case !e.IsDeleted:
		return EnrollmentActive
	case e.Completed:
		return EnrollmentCompletedUnassigned
	default:
		return EnrollmentUnassigned
	}
}
