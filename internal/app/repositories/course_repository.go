package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/logger"
)

var courseColumns = []string{"id", "name", "description", "start_date", "end_date", "created_at", "updated_at"}

// CourseRepository handles course database operations
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.StartDate.Time, &c.EndDate.Time, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// Create inserts a course and fills in its ID and timestamps
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "description", "start_date", "end_date").
		Values(course.Name, course.Description, course.StartDate.Time, course.EndDate.Time).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// Update writes all editable fields of course and refreshes its UpdatedAt
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"name":        course.Name,
			"description": course.Description,
			"start_date":  course.StartDate.Time,
			"end_date":    course.EndDate.Time,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": course.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	return nil
}

// Delete removes a course; enrollments go with it through ON DELETE CASCADE
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
