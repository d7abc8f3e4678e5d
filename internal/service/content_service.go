package service

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// ContentService is the admin-side write surface for the catalog. Students
// never touch these paths; every successful write invalidates the cached
// course list.
type ContentService struct {
	CourseRepo  *repository.CourseRepository
	SectionRepo *repository.SectionRepository
	Catalog     *CatalogService
}

func NewContentService(courseRepo *repository.CourseRepository, sectionRepo *repository.SectionRepository, catalog *CatalogService) *ContentService {
	return &ContentService{
		CourseRepo:  courseRepo,
		SectionRepo: sectionRepo,
		Catalog:     catalog,
	}
}

type CourseInput struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	VideoURL     string `json:"videoUrl"`
}

type SectionInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Position    int    `json:"position" binding:"required,min=1"`
}

func (s *ContentService) CreateCourse(input CourseInput) (*model.Course, error) {
	course := &model.Course{
		Title:        input.Title,
		Description:  input.Description,
		ThumbnailURL: input.ThumbnailURL,
		VideoURL:     input.VideoURL,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}

	s.Catalog.InvalidateCache()
	return course, nil
}

func (s *ContentService) UpdateCourse(id string, input CourseInput) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	course.Title = input.Title
	course.Description = input.Description
	course.ThumbnailURL = input.ThumbnailURL
	course.VideoURL = input.VideoURL

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}

	s.Catalog.InvalidateCache()
	return course, nil
}

func (s *ContentService) DeleteCourse(id string) error {
	if _, err := s.CourseRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}

	if err := s.CourseRepo.Delete(id); err != nil {
		return err
	}

	s.Catalog.InvalidateCache()
	return nil
}

func (s *ContentService) AddSection(courseID string, input SectionInput) (*model.Section, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	taken, err := s.SectionRepo.PositionTaken(courseID, input.Position, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrPositionTaken
	}

	section := &model.Section{
		CourseID:    courseID,
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
	}
	if err := s.SectionRepo.Create(section); err != nil {
		return nil, err
	}

	s.Catalog.InvalidateCache()
	return section, nil
}

func (s *ContentService) UpdateSection(id string, input SectionInput) (*model.Section, error) {
	section, err := s.SectionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSectionNotFound
		}
		return nil, err
	}

	taken, err := s.SectionRepo.PositionTaken(section.CourseID, input.Position, section.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrPositionTaken
	}

	section.Title = input.Title
	section.Description = input.Description
	section.Position = input.Position

	if err := s.SectionRepo.Update(section); err != nil {
		return nil, err
	}

	s.Catalog.InvalidateCache()
	return section, nil
}

func (s *ContentService) DeleteSection(id string) error {
	if _, err := s.SectionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSectionNotFound
		}
		return err
	}

	if err := s.SectionRepo.Delete(id); err != nil {
		return err
	}

	s.Catalog.InvalidateCache()
	return nil
}
