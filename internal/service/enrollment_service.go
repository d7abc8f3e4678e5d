package service

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"coursehub_backend/pkg/monitoring"
	"errors"

	"gorm.io/gorm"
)

// EnrollmentService owns the three student-side writes: enroll, mark a
// section complete, bump the stored progress scalar. Duplicate arbitration
// lives here and in the unique indexes, never in the client.
type EnrollmentService struct {
	EnrollRepo     *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	SectionRepo    *repository.SectionRepository
	CompletionRepo *repository.SectionCompletionRepository
}

func NewEnrollmentService(
	enrollRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	sectionRepo *repository.SectionRepository,
	completionRepo *repository.SectionCompletionRepository,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollRepo:     enrollRepo,
		CourseRepo:     courseRepo,
		SectionRepo:    sectionRepo,
		CompletionRepo: completionRepo,
	}
}

// Enroll creates the (user, course) enrollment with progress 0.
func (s *EnrollmentService) Enroll(userID uint, courseID string) (*model.Enrollment, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if _, err := s.EnrollRepo.FindByUserAndCourse(userID, courseID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Progress: 0,
	}
	if err := s.EnrollRepo.Create(enrollment); err != nil {
		return nil, err
	}

	monitoring.EnrollmentCounter.Inc()
	return enrollment, nil
}

// IsEnrolled reports whether an enrollment row exists for (user, course).
func (s *EnrollmentService) IsEnrolled(userID uint, courseID string) (bool, error) {
	_, err := s.EnrollRepo.FindByUserAndCourse(userID, courseID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// CompleteSection records that the user finished a section. The row is a
// pure existence flag.
func (s *EnrollmentService) CompleteSection(userID uint, sectionID string) (*model.SectionCompletion, error) {
	if _, err := s.SectionRepo.FindByID(sectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSectionNotFound
		}
		return nil, err
	}

	done, err := s.CompletionRepo.Exists(userID, sectionID)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, util.ErrSectionDone
	}

	completion := &model.SectionCompletion{
		UserID:    userID,
		SectionID: sectionID,
	}
	if err := s.CompletionRepo.Create(completion); err != nil {
		return nil, err
	}

	monitoring.SectionCompletionCounter.Inc()
	return completion, nil
}

// BumpProgress sets the enrollment scalar to min(current+10, 100) and
// returns the new value so the client can update its view without a
// refetch.
func (s *EnrollmentService) BumpProgress(userID uint, courseID string) (int, error) {
	enrollment, err := s.EnrollRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrEnrollmentNotFound
		}
		return 0, err
	}

	next := BumpProgress(enrollment.Progress)
	if next != enrollment.Progress {
		if err := s.EnrollRepo.UpdateProgress(enrollment.ID, next); err != nil {
			return 0, err
		}
	}

	return next, nil
}
