package model

// SectionCompletion marks a section as finished by a user. Existence of the
// row is the whole signal; it is never updated or deleted.
// swagger:model SectionCompletion
type SectionCompletion struct {
	UUIDBase
	UserID    uint   `gorm:"index:idx_user_section,unique;not null" json:"userId"`
	SectionID string `gorm:"type:varchar(36);index:idx_user_section,unique;not null" json:"sectionId"`
}

func (SectionCompletion) TableName() string {
	return "section_completions"
}
