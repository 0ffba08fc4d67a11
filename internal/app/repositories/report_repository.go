package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/pkg/apperrors"
)

// ReportRepository computes the student and course summaries straight from the tables
type ReportRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ReportRepository) studentQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.id",
		"s.first_name",
		"s.last_name",
		"COUNT(e.id) FILTER (WHERE NOT e.is_deleted) AS courses_assigned",
		"COUNT(e.id) FILTER (WHERE e.completed) AS courses_completed",
	).
		From("students s").
		LeftJoin("enrollments e ON e.student_id = s.id").
		GroupBy("s.id")
}

func (r *ReportRepository) courseQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.id",
		"c.name",
		"c.start_date",
		"c.end_date",
		"COUNT(e.id) FILTER (WHERE NOT e.is_deleted) AS students_count",
	).
		From("courses c").
		LeftJoin("enrollments e ON e.course_id = c.id").
		GroupBy("c.id")
}

func scanStudentReport(row pgx.Row) (models.StudentReport, error) {
	var (
		rep                 models.StudentReport
		firstName, lastName string
	)
	err := row.Scan(&rep.StudentID, &firstName, &lastName, &rep.CoursesAssigned, &rep.CoursesCompleted)
	rep.FullName = (&models.Student{FirstName: firstName, LastName: lastName}).FullName()
	return rep, err
}

func scanCourseReport(row pgx.Row) (models.CourseReport, error) {
	var rep models.CourseReport
	err := row.Scan(&rep.CourseID, &rep.Name, &rep.StartDate.Time, &rep.EndDate.Time, &rep.StudentsCount)
	return rep, err
}

// StudentReports returns one row per student, newest student first
func (r *ReportRepository) StudentReports(ctx context.Context) ([]models.StudentReport, error) {
	sql, args, err := r.studentQuery().OrderBy("s.created_at DESC", "s.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying student report: %w", err)
	}
	defer rows.Close()

	reports := []models.StudentReport{}
	for rows.Next() {
		rep, err := scanStudentReport(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student report row: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student report rows: %w", err)
	}

	return reports, nil
}

// StudentReportByID returns the summary of one student
func (r *ReportRepository) StudentReportByID(ctx context.Context, studentID int64) (*models.StudentReport, error) {
	sql, args, err := r.studentQuery().Where(squirrel.Eq{"s.id": studentID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student report query: %w", err)
	}

	rep, err := scanStudentReport(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student report: %w", err)
	}

	return &rep, nil
}

// CourseReports returns one row per course, newest course first
func (r *ReportRepository) CourseReports(ctx context.Context) ([]models.CourseReport, error) {
	sql, args, err := r.courseQuery().OrderBy("c.created_at DESC", "c.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying course report: %w", err)
	}
	defer rows.Close()

	reports := []models.CourseReport{}
	for rows.Next() {
		rep, err := scanCourseReport(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course report row: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course report rows: %w", err)
	}

	return reports, nil
}

// CourseReportByID returns the summary of one course
func (r *ReportRepository) CourseReportByID(ctx context.Context, courseID int64) (*models.CourseReport, error) {
	sql, args, err := r.courseQuery().Where(squirrel.Eq{"c.id": courseID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course report query: %w", err)
	}

	rep, err := scanCourseReport(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course report: %w", err)
	}

	return &rep, nil
}
