// Package repotest provides an in-memory implementation of the repository
// interfaces for service and handler tests.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/repositories"
)

var baseTime = time.Date(2019, time.November, 1, 9, 0, 0, 0, time.UTC)

// Store keeps students, courses and enrollments in memory. Timestamps come
// from a fake clock that advances one second per write, so ordering by
// creation time is deterministic.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	students    map[int64]*models.Student
	courses     map[int64]*models.Course
	enrollments map[int64]*models.Enrollment

	lastID int64
	ticks  int64
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{
		students:    map[int64]*models.Student{},
		courses:     map[int64]*models.Course{},
		enrollments: map[int64]*models.Enrollment{},
	}
}

// Repositories returns repositories backed by the store
func (s *Store) Repositories() *repositories.Repositories {
	return repositories.New(
		&studentStore{s},
		&courseStore{s},
		&enrollmentStore{s},
		&reportStore{s},
		&transactor{s},
	)
}

func (s *Store) now() time.Time {
	s.ticks++
	return baseTime.Add(time.Duration(s.ticks) * time.Second)
}

func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

// AddStudent inserts a student directly, keeping any timestamps already set
func (s *Store) AddStudent(st models.Student) *models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.ID = s.nextID()
	fillTimes(s, &st.CreatedAt, &st.UpdatedAt)
	s.students[st.ID] = &st
	out := st
	return &out
}

// AddCourse inserts a course directly, keeping any timestamps already set
func (s *Store) AddCourse(c models.Course) *models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID()
	fillTimes(s, &c.CreatedAt, &c.UpdatedAt)
	s.courses[c.ID] = &c
	out := c
	return &out
}

// AddEnrollment inserts an enrollment row as given, bypassing the active
// pair check, so tests can set up historical rows.
func (s *Store) AddEnrollment(e models.Enrollment) *models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextID()
	fillTimes(s, &e.CreatedAt, &e.UpdatedAt)
	s.enrollments[e.ID] = &e
	out := e
	return &out
}

// Enrollments returns a copy of every enrollment row ordered by ID
func (s *Store) Enrollments() []models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Enrollment, 0, len(s.enrollments))
	for _, e := range s.enrollments {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// EnrollmentsFor returns the rows of one (course, student) pair ordered by ID
func (s *Store) EnrollmentsFor(courseID, studentID int64) []models.Enrollment {
	var out []models.Enrollment
	for _, e := range s.Enrollments() {
		if e.CourseID == courseID && e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out
}

func fillTimes(s *Store, created, updated *time.Time) {
	if created.IsZero() {
		*created = s.now()
	}
	if updated.IsZero() {
		*updated = *created
	}
}

type snapshot struct {
	students    map[int64]models.Student
	courses     map[int64]models.Course
	enrollments map[int64]models.Enrollment
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{
		students:    make(map[int64]models.Student, len(s.students)),
		courses:     make(map[int64]models.Course, len(s.courses)),
		enrollments: make(map[int64]models.Enrollment, len(s.enrollments)),
	}
	for id, v := range s.students {
		snap.students[id] = *v
	}
	for id, v := range s.courses {
		snap.courses[id] = *v
	}
	for id, v := range s.enrollments {
		snap.enrollments[id] = *v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = make(map[int64]*models.Student, len(snap.students))
	for id, v := range snap.students {
		v := v
		s.students[id] = &v
	}
	s.courses = make(map[int64]*models.Course, len(snap.courses))
	for id, v := range snap.courses {
		v := v
		s.courses[id] = &v
	}
	s.enrollments = make(map[int64]*models.Enrollment, len(snap.enrollments))
	for id, v := range snap.enrollments {
		v := v
		s.enrollments[id] = &v
	}
}

// transactor serialises transactions and restores the previous state when fn fails
type transactor struct{ s *Store }

func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *repositories.Repositories) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	snap := t.s.snapshot()
	nested := &nestedTransactor{}
	repos := repositories.New(&studentStore{t.s}, &courseStore{t.s}, &enrollmentStore{t.s}, &reportStore{t.s}, nested)
	nested.repos = repos
	if err := fn(ctx, repos); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

type nestedTransactor struct {
	repos *repositories.Repositories
}

func (n *nestedTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *repositories.Repositories) error) error {
	return fn(ctx, n.repos)
}
