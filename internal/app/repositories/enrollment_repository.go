package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/dberrors"
	"github.com/yigit/university/internal/pkg/logger"
)

// ErrDuplicateActiveEnrollment is returned when a write would leave two active
// rows for the same student and course.
var ErrDuplicateActiveEnrollment = errors.New("active enrollment already exists for student and course")

var enrollmentColumns = []string{"id", "student_id", "course_id", "completed", "is_deleted", "created_at", "updated_at"}

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	e := &models.Enrollment{}
	err := row.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.Completed, &e.IsDeleted, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// LockPair takes a transaction-scoped advisory lock keyed on the pair
func (r *EnrollmentRepository) LockPair(ctx context.Context, courseID, studentID int64) error {
	key := fmt.Sprintf("enrollment:%d:%d", courseID, studentID)
	if _, err := r.db.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", key); err != nil {
		return fmt.Errorf("error locking enrollment pair: %w", err)
	}
	return nil
}

// FindActive returns the active enrollment of the pair
func (r *EnrollmentRepository) FindActive(ctx context.Context, courseID, studentID int64) (*models.Enrollment, error) {
	return r.findOne(ctx, r.sb.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"course_id": courseID, "student_id": studentID, "is_deleted": false}).
		Limit(1))
}

// FindLatestDeleted returns the soft-deleted enrollment of the pair that was updated last
func (r *EnrollmentRepository) FindLatestDeleted(ctx context.Context, courseID, studentID int64) (*models.Enrollment, error) {
	return r.findOne(ctx, r.sb.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"course_id": courseID, "student_id": studentID, "is_deleted": true}).
		OrderBy("updated_at DESC", "id DESC").
		Limit(1))
}

func (r *EnrollmentRepository) findOne(ctx context.Context, query squirrel.SelectBuilder) (*models.Enrollment, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find enrollment query: %w", err)
	}

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning enrollment row")
		return nil, fmt.Errorf("error finding enrollment: %w", err)
	}

	return enrollment, nil
}

// Create inserts an enrollment and fills in its ID and timestamps
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id", "completed", "is_deleted").
		Values(enrollment.StudentID, enrollment.CourseID, enrollment.Completed, enrollment.IsDeleted).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, dberrors.EnrollmentsActivePairKey):
			return ErrDuplicateActiveEnrollment
		case dberrors.IsForeignKeyError(err, dberrors.EnrollmentsStudentFKey):
			return apperrors.ErrStudentNotFound
		case dberrors.IsForeignKeyError(err, dberrors.EnrollmentsCourseFKey):
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create enrollment query")
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// SetDeleted flips the soft-delete flag and refreshes updated_at; completed is untouched
func (r *EnrollmentRepository) SetDeleted(ctx context.Context, id int64, deleted bool) error {
	sql, args, err := r.sb.Update("enrollments").
		Set("is_deleted", deleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.EnrollmentsActivePairKey) {
			return ErrDuplicateActiveEnrollment
		}
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error executing update enrollment query")
		return fmt.Errorf("error updating enrollment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
