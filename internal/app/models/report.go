package models

import "strconv"

// StudentReportHeader is the CSV header of the students report
var StudentReportHeader = []string{"full_name", "courses_assigned", "courses_completed"}

// StudentReport is the per-student summary row
type StudentReport struct {
	StudentID        int64  `json:"-"`
	FullName         string `json:"full_name" example:"Tom1 Bri1"`
	CoursesAssigned  int64  `json:"courses_assigned" example:"2"`
	CoursesCompleted int64  `json:"courses_completed" example:"1"`
}

// CSVRecord implements csvexport.Row
func (r StudentReport) CSVRecord() []string {
	return []string{
		r.FullName,
		strconv.FormatInt(r.CoursesAssigned, 10),
		strconv.FormatInt(r.CoursesCompleted, 10),
	}
}

// CourseReport is the per-course summary row
type CourseReport struct {
	CourseID      int64  `json:"-"`
	Name          string `json:"name" example:"Course1"`
	StartDate     Date   `json:"start_date" swaggertype:"string" example:"2019-11-07"`
	EndDate       Date   `json:"end_date" swaggertype:"string" example:"2019-11-11"`
	StudentsCount int64  `json:"students_count" example:"3"`
}
