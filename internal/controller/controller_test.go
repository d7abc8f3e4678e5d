package controller

import (
	"bytes"
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/middleware"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/service"
	"coursehub_backend/pkg/logger"
	"coursehub_backend/pkg/monitoring"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	logger.InitLogger(cfg)
	monitoring.Init()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testServer wires the full student-facing route surface against a private
// in-memory database, so requests travel through the same middleware chain
// as in production.
type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Section{},
		&model.Enrollment{},
		&model.SectionCompletion{},
	))

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	enrollRepo := repository.NewEnrollmentRepository(db)
	completionRepo := repository.NewSectionCompletionRepository(db)

	authService := service.NewAuthService(userRepo, nil, cfg)
	catalogService := service.NewCatalogService(courseRepo, enrollRepo, completionRepo, nil, time.Minute)
	enrollmentService := service.NewEnrollmentService(enrollRepo, courseRepo, sectionRepo, completionRepo)

	authController := NewAuthController(authService)
	dashboardController := NewDashboardController(catalogService)
	courseController := NewCourseController(catalogService)
	enrollmentController := NewEnrollmentController(enrollmentService)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)

	authGroup := api.Group("")
	authGroup.Use(middleware.AuthMiddleware(cfg, authService))
	authGroup.GET("/session", authController.GetSession)
	authGroup.POST("/logout", authController.Logout)
	authGroup.GET("/dashboard", dashboardController.GetDashboard)
	authGroup.GET("/courses", courseController.ListCourses)
	authGroup.GET("/courses/:id", courseController.GetCourse)
	authGroup.POST("/courses/:id/enroll", enrollmentController.Enroll)
	authGroup.PATCH("/courses/:id/progress", enrollmentController.BumpProgress)
	authGroup.POST("/sections/:id/complete", enrollmentController.CompleteSection)

	return &testServer{router: r, db: db}
}

func (s *testServer) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// signup registers and logs in a fresh user, returning the bearer token.
func (s *testServer) signup(t *testing.T, email string) string {
	t.Helper()

	w := s.request(http.MethodPost, "/api/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "longenough",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.request(http.MethodPost, "/api/login", "", gin.H{
		"email":    email,
		"password": "longenough",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func (s *testServer) seedCourse(t *testing.T, title string, sections int) *model.Course {
	t.Helper()

	course := &model.Course{Title: title, Description: "d"}
	require.NoError(t, s.db.Create(course).Error)
	for i := 1; i <= sections; i++ {
		require.NoError(t, s.db.Create(&model.Section{
			CourseID: course.ID,
			Title:    fmt.Sprintf("section %d", i),
			Position: i,
		}).Error)
	}
	return course
}

func TestDashboardRequiresSession(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodGet, "/api/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionEchoesUser(t *testing.T) {
	s := newTestServer(t)
	token := s.signup(t, "ada@example.com")

	w := s.request(http.MethodGet, "/api/session", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodPost, "/api/register", "", gin.H{
		"name":     "Short",
		"email":    "short@example.com",
		"password": "tiny",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseDetailNotFoundMessage(t *testing.T) {
	s := newTestServer(t)
	token := s.signup(t, "ada@example.com")

	w := s.request(http.MethodGet, "/api/courses/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Course not found")
}

func TestEnrollFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.signup(t, "ada@example.com")
	course := s.seedCourse(t, "Go from Zero", 2)

	w := s.request(http.MethodPost, "/api/courses/"+course.ID+"/enroll", token, nil)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.request(http.MethodPost, "/api/courses/"+course.ID+"/enroll", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.request(http.MethodGet, "/api/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isEnrolled":true`)
}

func TestBumpProgressOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.signup(t, "ada@example.com")
	course := s.seedCourse(t, "Go from Zero", 1)

	// no enrollment yet
	w := s.request(http.MethodPatch, "/api/courses/"+course.ID+"/progress", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Enrollment not found")

	s.request(http.MethodPost, "/api/courses/"+course.ID+"/enroll", token, nil)

	w = s.request(http.MethodPatch, "/api/courses/"+course.ID+"/progress", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"progress":10`)
}

func TestCompleteSectionOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.signup(t, "ada@example.com")
	course := s.seedCourse(t, "Go from Zero", 1)

	var section model.Section
	require.NoError(t, s.db.Where("course_id = ?", course.ID).First(&section).Error)

	w := s.request(http.MethodPost, "/api/sections/"+section.ID+"/complete", token, nil)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.request(http.MethodPost, "/api/sections/"+section.ID+"/complete", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.request(http.MethodGet, "/api/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"completed":true`)
}
