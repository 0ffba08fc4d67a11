package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	FirstName string    `json:"first_name" db:"first_name" example:"Tom1"`
	LastName  string    `json:"last_name" db:"last_name" example:"Bri1"`
	Email     string    `json:"email" db:"email" example:"bri1@gmail.com"`
	CreatedAt time.Time `json:"created" db:"created_at"`
	UpdatedAt time.Time `json:"updated" db:"updated_at"`
}

// FullName returns "first last"
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
