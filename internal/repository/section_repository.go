package repository

import (
	"coursehub_backend/internal/model"

	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

func (r *SectionRepository) Create(section *model.Section) error {
	return r.DB.Create(section).Error
}

func (r *SectionRepository) FindByID(id string) (*model.Section, error) {
	var section model.Section
	err := r.DB.Where("id = ?", id).First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *SectionRepository) Update(section *model.Section) error {
	return r.DB.Save(section).Error
}

func (r *SectionRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Section{}).Error
}

// PositionTaken reports whether another section of the same course already
// occupies the given position.
func (r *SectionRepository) PositionTaken(courseID string, position int, excludeID string) (bool, error) {
	var count int64
	q := r.DB.Model(&model.Section{}).
		Where("course_id = ? AND position = ?", courseID, position)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
