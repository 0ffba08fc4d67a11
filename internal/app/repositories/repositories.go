package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yigit/university/internal/app/models"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner is a DBTX that can open transactions, such as *pgxpool.Pool
type TxBeginner interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// StudentStore persists students. Lists are ordered newest first.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// CourseStore persists courses. Course listings come from ReportStore.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentStore persists the student/course join rows
type EnrollmentStore interface {
	// LockPair serialises writers of one (course, student) pair until the
	// surrounding transaction ends.
	LockPair(ctx context.Context, courseID, studentID int64) error
	FindActive(ctx context.Context, courseID, studentID int64) (*models.Enrollment, error)
	// FindLatestDeleted returns the most recently updated soft-deleted row.
	FindLatestDeleted(ctx context.Context, courseID, studentID int64) (*models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	SetDeleted(ctx context.Context, id int64, deleted bool) error
}

// ReportStore computes live aggregates
type ReportStore interface {
	StudentReports(ctx context.Context) ([]models.StudentReport, error)
	StudentReportByID(ctx context.Context, studentID int64) (*models.StudentReport, error)
	CourseReports(ctx context.Context) ([]models.CourseReport, error)
	CourseReportByID(ctx context.Context, courseID int64) (*models.CourseReport, error)
}

// Transactor runs fn with repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}

// Repositories holds all the repository instances
type Repositories struct {
	Students    StudentStore
	Courses     CourseStore
	Enrollments EnrollmentStore
	Reports     ReportStore

	tx Transactor
}

// New assembles Repositories from arbitrary store implementations
func New(students StudentStore, courses CourseStore, enrollments EnrollmentStore, reports ReportStore, tx Transactor) *Repositories {
	return &Repositories{
		Students:    students,
		Courses:     courses,
		Enrollments: enrollments,
		Reports:     reports,
		tx:          tx,
	}
}

// NewRepositories initializes the PostgreSQL repositories
func NewRepositories(db TxBeginner) *Repositories {
	repos := bind(db)
	repos.tx = &pgTransactor{db: db}
	return repos
}

func bind(db DBTX) *Repositories {
	return &Repositories{
		Students:    NewStudentRepository(db),
		Courses:     NewCourseRepository(db),
		Enrollments: NewEnrollmentRepository(db),
		Reports:     NewReportRepository(db),
	}
}

// WithinTransaction runs fn inside a transaction
func (r *Repositories) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	return r.tx.WithinTransaction(ctx, fn)
}
