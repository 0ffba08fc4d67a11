package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Constraint names declared in the schema migrations.
const (
	StudentsEmailKey         = "students_email_key"
	EnrollmentsActivePairKey = "enrollments_active_pair_key"
	EnrollmentsStudentFKey   = "enrollments_student_id_fkey"
	EnrollmentsCourseFKey    = "enrollments_course_id_fkey"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	// Check if the error is a PgError, if the code is unique_violation (23505),
	// and if the constraint name matches the provided one.
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraintName
}

// IsForeignKeyError checks if the error is a foreign key violation on the given constraint.
func IsForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation && pgErr.ConstraintName == constraintName
}
