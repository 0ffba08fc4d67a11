package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/repositories"
)

var (
	demoStudents = []models.Student{
		{FirstName: "Tom1", LastName: "Bri1", Email: "bri1@gmail.com"},
		{FirstName: "Tom2", LastName: "Bri2", Email: "bri2@gmail.com"},
	}

	demoCourses = []models.Course{
		{Name: "Course1", Description: "Lorem1", StartDate: models.MustParseDate("2019-11-07"), EndDate: models.MustParseDate("2019-11-11")},
		{Name: "Course2", Description: "Lorem2", StartDate: models.MustParseDate("2019-11-06"), EndDate: models.MustParseDate("2019-11-23")},
	}
)

// CreateDemoData inserts the demo students and courses plus one completed,
// unassigned enrollment of the first student in the second course.
// It does nothing when any student already exists.
func CreateDemoData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	existing, err := repos.Students.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing students: %w", err)
	}
	if len(existing) > 0 {
		lgr.Info().Int("students", len(existing)).Msg("Demo data skipped, database is not empty")
		return nil
	}

	lgr.Info().Msg("Creating demo data (students, courses, enrollments)...")

	return repos.WithinTransaction(ctx, func(ctx context.Context, tx *repositories.Repositories) error {
		var finalErr error

		students := make([]*models.Student, 0, len(demoStudents))
		for _, st := range demoStudents {
			st := st
			if err := tx.Students.Create(ctx, &st); err != nil {
				lgr.Error().Err(err).Str("email", st.Email).Msg("Error creating demo student")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			students = append(students, &st)
		}

		courses := make([]*models.Course, 0, len(demoCourses))
		for _, c := range demoCourses {
			c := c
			if err := tx.Courses.Create(ctx, &c); err != nil {
				lgr.Error().Err(err).Str("course", c.Name).Msg("Error creating demo course")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			courses = append(courses, &c)
		}

		if finalErr != nil {
			return finalErr
		}

		history := &models.Enrollment{
			StudentID: students[0].ID,
			CourseID:  courses[1].ID,
			Completed: true,
			IsDeleted: true,
		}
		if err := tx.Enrollments.Create(ctx, history); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo enrollment")
			return err
		}

		lgr.Info().
			Int("students", len(students)).
			Int("courses", len(courses)).
			Msg("Demo data created")
		return nil
	})
}
