package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/repositories/repotest"
	"github.com/yigit/university/internal/config"
	appMiddleware "github.com/yigit/university/internal/middleware"
)

func newRouter(t *testing.T) (*repotest.Store, http.Handler) {
	t.Helper()
	cfg, err := config.LoadConfig("does-not-exist.yaml")
	require.NoError(t, err)
	cfg.Server.Mode = "production"

	store := repotest.NewStore()
	deps := BuildDependencies(store.Repositories(), zerolog.Nop())
	return store, SetupRouter(cfg, deps, zerolog.Nop())
}

func TestSetupRouter_Ping(t *testing.T) {
	_, router := newRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong","status":"success"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(appMiddleware.RequestIDHeader))
}

func TestSetupRouter_ServesCourses(t *testing.T) {
	store, router := newRouter(t)
	store.AddCourse(models.Course{
		Name:      "Course1",
		StartDate: models.MustParseDate("2019-11-07"),
		EndDate:   models.MustParseDate("2019-11-11"),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"Course1","start_date":"2019-11-07","end_date":"2019-11-11","students_count":0}]`, w.Body.String())
}

func TestSetupRouter_Swagger(t *testing.T) {
	_, router := newRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "University Courses API")
}
