package service

import (
	"context"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const catalogCacheKey = "catalog:courses"

// CatalogService serves the read side: course lists, the dashboard payload
// and the course detail page. Every call rebuilds its view from the current
// rows; nothing is held between requests beyond the redis list cache.
type CatalogService struct {
	CourseRepo     *repository.CourseRepository
	EnrollRepo     *repository.EnrollmentRepository
	CompletionRepo *repository.SectionCompletionRepository
	Redis          *redis.Client

	cacheTTL time.Duration
}

func NewCatalogService(
	courseRepo *repository.CourseRepository,
	enrollRepo *repository.EnrollmentRepository,
	completionRepo *repository.SectionCompletionRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *CatalogService {
	return &CatalogService{
		CourseRepo:     courseRepo,
		EnrollRepo:     enrollRepo,
		CompletionRepo: completionRepo,
		Redis:          rdb,
		cacheTTL:       cacheTTL,
	}
}

// SetCacheTTL is called on config hot reload.
func (s *CatalogService) SetCacheTTL(ttl time.Duration) {
	s.cacheTTL = ttl
}

// ListCourses returns the full catalog with sections in display order,
// served from redis when a fresh copy is cached.
func (s *CatalogService) ListCourses() ([]model.Course, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(context.Background(), catalogCacheKey).Result()
		if err == nil {
			var cached []model.Course
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	courses, err := s.CourseRepo.FindAllWithSections()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil && s.cacheTTL > 0 {
		if payload, err := json.Marshal(courses); err == nil {
			s.Redis.Set(context.Background(), catalogCacheKey, payload, s.cacheTTL)
		}
	}

	return courses, nil
}

// Dashboard assembles the course cards for one user: three reads (courses
// with sections, the user's enrollments, the user's completed section IDs),
// then pure merging. Any read error fails the whole call; no partial payload
// is ever returned.
func (s *CatalogService) Dashboard(userID uint) ([]model.DashboardCourse, error) {
	courses, err := s.ListCourses()
	if err != nil {
		return nil, err
	}

	enrollments, err := s.EnrollRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	completedIDs, err := s.CompletionRepo.CompletedSectionIDs(userID)
	if err != nil {
		return nil, err
	}

	enrolled := make(map[string]bool, len(enrollments))
	for _, e := range enrollments {
		enrolled[e.CourseID] = true
	}

	completed := make(map[string]bool, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = true
	}

	cards := make([]model.DashboardCourse, 0, len(courses))
	for _, course := range courses {
		sections := make([]model.SectionView, 0, len(course.Sections))
		doneCount := 0
		for _, section := range course.Sections {
			done := completed[section.ID]
			if done {
				doneCount++
			}
			sections = append(sections, model.SectionView{
				ID:          section.ID,
				Title:       section.Title,
				Description: section.Description,
				Position:    section.Position,
				Completed:   done,
			})
		}
		// the repository preloads in order already; re-sort to stay
		// independent of cache round-trips
		sort.Slice(sections, func(i, j int) bool {
			return sections[i].Position < sections[j].Position
		})

		cards = append(cards, model.DashboardCourse{
			ID:           course.ID,
			Title:        course.Title,
			Description:  course.Description,
			ThumbnailURL: course.ThumbnailURL,
			VideoURL:     course.VideoURL,
			Sections:     sections,
			IsEnrolled:   enrolled[course.ID],
			Progress:     ProgressPercent(doneCount, len(course.Sections)),
		})
	}

	return cards, nil
}

// CourseDetail returns one course plus the stored enrollment progress
// scalar. The scalar intentionally stays independent from the section-based
// percentage on the dashboard.
func (s *CatalogService) CourseDetail(userID uint, courseID string) (*model.CourseDetail, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	detail := &model.CourseDetail{Course: *course}

	enrollment, err := s.EnrollRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// not enrolled: progress defaults to 0
		return detail, nil
	}

	detail.IsEnrolled = true
	detail.Progress = enrollment.Progress
	return detail, nil
}

// InvalidateCache drops the cached course list. Called after admin writes.
func (s *CatalogService) InvalidateCache() {
	if s.Redis != nil {
		s.Redis.Del(context.Background(), catalogCacheKey)
	}
}
