package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/pkg/apperrors"
)

var (
	studentReportColumns = []string{"id", "first_name", "last_name", "courses_assigned", "courses_completed"}
	courseReportColumns  = []string{"id", "name", "start_date", "end_date", "students_count"}
)

func TestReportRepository_StudentReports(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(`LEFT JOIN enrollments e ON e.student_id = s.id GROUP BY s.id ORDER BY s.created_at DESC, s.id DESC`).
		WillReturnRows(pgxmock.NewRows(studentReportColumns).
			AddRow(int64(2), "Tom2", "Bri2", int64(0), int64(0)).
			AddRow(int64(1), "Tom1", "Bri1", int64(2), int64(1)))

	reports, err := repo.StudentReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.StudentReport{
		{StudentID: 2, FullName: "Tom2 Bri2"},
		{StudentID: 1, FullName: "Tom1 Bri1", CoursesAssigned: 2, CoursesCompleted: 1},
	}, reports)
}

func TestReportRepository_StudentReports_Empty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(`FROM students s`).WillReturnRows(pgxmock.NewRows(studentReportColumns))

	reports, err := repo.StudentReports(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestReportRepository_StudentReportByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(`FROM students s .* WHERE s.id = \$1 GROUP BY s.id`).
		WithArgs(int64(8)).
		WillReturnRows(pgxmock.NewRows(studentReportColumns))

	_, err := repo.StudentReportByID(context.Background(), 8)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestReportRepository_CourseReportByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)
	start := models.NewDate(2019, time.November, 7)
	end := models.NewDate(2019, time.November, 11)

	mock.ExpectQuery(`COUNT\(e.id\) FILTER \(WHERE NOT e.is_deleted\) AS students_count FROM courses c`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(courseReportColumns).AddRow(int64(1), "Course1", start.Time, end.Time, int64(3)))

	rep, err := repo.CourseReportByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Course1", rep.Name)
	assert.Equal(t, int64(3), rep.StudentsCount)
	assert.Equal(t, "2019-11-07", rep.StartDate.String())
}

func TestReportRepository_CourseReports(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)
	start := models.NewDate(2019, time.November, 7)

	mock.ExpectQuery(`FROM courses c LEFT JOIN enrollments e ON e.course_id = c.id GROUP BY c.id ORDER BY c.created_at DESC, c.id DESC`).
		WillReturnRows(pgxmock.NewRows(courseReportColumns).
			AddRow(int64(2), "Course2", start.Time, start.Time, int64(0)).
			AddRow(int64(1), "Course1", start.Time, start.Time, int64(1)))

	reports, err := repo.CourseReports(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "Course2", reports[0].Name)
}
