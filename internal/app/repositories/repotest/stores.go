package repotest

import (
	"context"
	"sort"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/repositories"
	"github.com/yigit/university/internal/pkg/apperrors"
)

type studentStore struct{ s *Store }

func (r *studentStore) Create(ctx context.Context, student *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.students {
		if existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	student.ID = r.s.nextID()
	student.CreatedAt = r.s.now()
	student.UpdatedAt = student.CreatedAt
	cp := *student
	r.s.students[cp.ID] = &cp
	return nil
}

func (r *studentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *st
	return &cp, nil
}

func (r *studentStore) List(ctx context.Context) ([]*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Student, 0, len(r.s.students))
	for _, st := range r.s.students {
		cp := *st
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *studentStore) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(r.s.students, id)
	for eid, e := range r.s.enrollments {
		if e.StudentID == id {
			delete(r.s.enrollments, eid)
		}
	}
	return nil
}

type courseStore struct{ s *Store }

func (r *courseStore) Create(ctx context.Context, course *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	course.ID = r.s.nextID()
	course.CreatedAt = r.s.now()
	course.UpdatedAt = course.CreatedAt
	cp := *course
	r.s.courses[cp.ID] = &cp
	return nil
}

func (r *courseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

// sorted returns copies of every course, newest first
func (r *courseStore) sorted() []*models.Course {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *courseStore) Update(ctx context.Context, course *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.courses[course.ID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	existing.Name = course.Name
	existing.Description = course.Description
	existing.StartDate = course.StartDate
	existing.EndDate = course.EndDate
	existing.UpdatedAt = r.s.now()
	course.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *courseStore) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.s.courses, id)
	for eid, e := range r.s.enrollments {
		if e.CourseID == id {
			delete(r.s.enrollments, eid)
		}
	}
	return nil
}

type enrollmentStore struct{ s *Store }

// LockPair is a no-op: the transactor already serialises every transaction.
func (r *enrollmentStore) LockPair(ctx context.Context, courseID, studentID int64) error {
	return nil
}

func (r *enrollmentStore) FindActive(ctx context.Context, courseID, studentID int64) (*models.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.enrollments {
		if e.CourseID == courseID && e.StudentID == studentID && !e.IsDeleted {
			cp := *e
			return &cp, nil
		}
	}
	return nil, apperrors.ErrEnrollmentNotFound
}

func (r *enrollmentStore) FindLatestDeleted(ctx context.Context, courseID, studentID int64) (*models.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var latest *models.Enrollment
	for _, e := range r.s.enrollments {
		if e.CourseID != courseID || e.StudentID != studentID || !e.IsDeleted {
			continue
		}
		if latest == nil || e.UpdatedAt.After(latest.UpdatedAt) ||
			(e.UpdatedAt.Equal(latest.UpdatedAt) && e.ID > latest.ID) {
			latest = e
		}
	}
	if latest == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	cp := *latest
	return &cp, nil
}

func (r *enrollmentStore) Create(ctx context.Context, enrollment *models.Enrollment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.students[enrollment.StudentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	if _, ok := r.s.courses[enrollment.CourseID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	if !enrollment.IsDeleted && r.s.hasActive(enrollment.CourseID, enrollment.StudentID, 0) {
		return repositories.ErrDuplicateActiveEnrollment
	}
	enrollment.ID = r.s.nextID()
	enrollment.CreatedAt = r.s.now()
	enrollment.UpdatedAt = enrollment.CreatedAt
	cp := *enrollment
	r.s.enrollments[cp.ID] = &cp
	return nil
}

func (r *enrollmentStore) SetDeleted(ctx context.Context, id int64, deleted bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.enrollments[id]
	if !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	if !deleted && r.s.hasActive(e.CourseID, e.StudentID, id) {
		return repositories.ErrDuplicateActiveEnrollment
	}
	e.IsDeleted = deleted
	e.UpdatedAt = r.s.now()
	return nil
}

// hasActive must be called with mu held
func (s *Store) hasActive(courseID, studentID, exceptID int64) bool {
	for _, e := range s.enrollments {
		if e.ID != exceptID && e.CourseID == courseID && e.StudentID == studentID && !e.IsDeleted {
			return true
		}
	}
	return false
}

type reportStore struct{ s *Store }

func (r *reportStore) studentReport(st *models.Student) models.StudentReport {
	rep := models.StudentReport{StudentID: st.ID, FullName: st.FullName()}
	for _, e := range r.s.enrollments {
		if e.StudentID != st.ID {
			continue
		}
		if !e.IsDeleted {
			rep.CoursesAssigned++
		}
		if e.Completed {
			rep.CoursesCompleted++
		}
	}
	return rep
}

func (r *reportStore) courseReport(c *models.Course) models.CourseReport {
	rep := models.CourseReport{CourseID: c.ID, Name: c.Name, StartDate: c.StartDate, EndDate: c.EndDate}
	for _, e := range r.s.enrollments {
		if e.CourseID == c.ID && !e.IsDeleted {
			rep.StudentsCount++
		}
	}
	return rep
}

func (r *reportStore) StudentReports(ctx context.Context) ([]models.StudentReport, error) {
	students, _ := (&studentStore{r.s}).List(ctx)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.StudentReport, 0, len(students))
	for _, st := range students {
		out = append(out, r.studentReport(st))
	}
	return out, nil
}

func (r *reportStore) StudentReportByID(ctx context.Context, studentID int64) (*models.StudentReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	rep := r.studentReport(st)
	return &rep, nil
}

func (r *reportStore) CourseReports(ctx context.Context) ([]models.CourseReport, error) {
	courses := (&courseStore{r.s}).sorted()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.CourseReport, 0, len(courses))
	for _, c := range courses {
		out = append(out, r.courseReport(c))
	}
	return out, nil
}

func (r *reportStore) CourseReportByID(ctx context.Context, courseID int64) (*models.CourseReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.courses[courseID]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	rep := r.courseReport(c)
	return &rep, nil
}
