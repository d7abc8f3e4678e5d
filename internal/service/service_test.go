package service

import (
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/pkg/logger"
	"coursehub_backend/pkg/monitoring"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	logger.InitLogger(cfg)
	monitoring.Init()
	os.Exit(m.Run())
}

// newTestDB opens a private in-memory database and migrates the schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Section{},
		&model.Enrollment{},
		&model.SectionCompletion{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

type testEnv struct {
	db         *gorm.DB
	catalog    *CatalogService
	enrollment *EnrollmentService
	content    *ContentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)

	courseRepo := repository.NewCourseRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	enrollRepo := repository.NewEnrollmentRepository(db)
	completionRepo := repository.NewSectionCompletionRepository(db)

	catalog := NewCatalogService(courseRepo, enrollRepo, completionRepo, nil, time.Minute)

	return &testEnv{
		db:         db,
		catalog:    catalog,
		enrollment: NewEnrollmentService(enrollRepo, courseRepo, sectionRepo, completionRepo),
		content:    NewContentService(courseRepo, sectionRepo, catalog),
	}
}

// mustCourse inserts a course whose sections are written in reverse order
// on purpose, so ordering assertions exercise the sort.
func mustCourse(t *testing.T, db *gorm.DB, title string, positions ...int) *model.Course {
	t.Helper()

	course := &model.Course{Title: title, Description: "d"}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}

	for i := len(positions) - 1; i >= 0; i-- {
		section := &model.Section{
			CourseID: course.ID,
			Title:    fmt.Sprintf("%s section %d", title, positions[i]),
			Position: positions[i],
		}
		if err := db.Create(section).Error; err != nil {
			t.Fatalf("create section: %v", err)
		}
	}

	loaded, err := repository.NewCourseRepository(db).FindByID(course.ID)
	if err != nil {
		t.Fatalf("reload course: %v", err)
	}
	return loaded
}
