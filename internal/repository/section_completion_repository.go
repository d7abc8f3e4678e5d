package repository

import (
	"coursehub_backend/internal/model"

	"gorm.io/gorm"
)

type SectionCompletionRepository struct {
	DB *gorm.DB
}

func NewSectionCompletionRepository(db *gorm.DB) *SectionCompletionRepository {
	return &SectionCompletionRepository{DB: db}
}

func (r *SectionCompletionRepository) Create(completion *model.SectionCompletion) error {
	return r.DB.Create(completion).Error
}

// CompletedSectionIDs projects the user's completions to their section IDs.
func (r *SectionCompletionRepository) CompletedSectionIDs(userID uint) ([]string, error) {
	var sectionIDs []string
	err := r.DB.Model(&model.SectionCompletion{}).
		Where("user_id = ?", userID).
		Pluck("section_id", &sectionIDs).Error
	return sectionIDs, err
}

func (r *SectionCompletionRepository) Exists(userID uint, sectionID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.SectionCompletion{}).
		Where("user_id = ? AND section_id = ?", userID, sectionID).
		Count(&count).Error
	return count > 0, err
}
