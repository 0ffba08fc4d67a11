package models

import "time"

// Course represents a course students can be assigned to.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	StartDate   Date      `json:"start_date" db:"start_date"`
	EndDate     Date      `json:"end_date" db:"end_date"`
	CreatedAt   time.Time `json:"created" db:"created_at"`
	UpdatedAt   time.Time `json:"updated" db:"updated_at"`
}
