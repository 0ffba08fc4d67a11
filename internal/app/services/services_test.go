package services_test

import (
	"testing"
	"time"

	"github.com/yigit/university/internal/app/auth"
	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/app/repositories/repotest"
	"github.com/yigit/university/internal/app/services"
)

type fixture struct {
	store  *repotest.Store
	svc    *services.Services
	tom1   *models.Student
	tom2   *models.Student
	course *models.Course
	other  *models.Course
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repotest.NewStore()
	f := &fixture{
		store: store,
		svc:   services.NewServices(store.Repositories(), auth.NewCoursePolicy()),
	}
	f.tom1 = store.AddStudent(models.Student{FirstName: "Tom1", LastName: "Bri1", Email: "bri1@gmail.com"})
	f.tom2 = store.AddStudent(models.Student{FirstName: "Tom2", LastName: "Bri2", Email: "bri2@gmail.com"})
	f.course = store.AddCourse(models.Course{
		Name:      "Course1",
		StartDate: models.NewDate(2019, time.November, 7),
		EndDate:   models.NewDate(2019, time.November, 11),
	})
	f.other = store.AddCourse(models.Course{
		Name:      "Course2",
		StartDate: models.NewDate(2019, time.November, 7),
		EndDate:   models.NewDate(2019, time.November, 23),
	})
	return f
}

func str(s string) dto.NullableString { return dto.NewNullableString(s) }

// activeCount returns the number of active enrollments of the pair
func activeCount(rows []models.Enrollment) int {
	n := 0
	for _, e := range rows {
		if e.IsActive() {
			n++
		}
	}
	return n
}
