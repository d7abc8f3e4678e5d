package model

// Course is the catalog entry students browse and enroll into. Courses are
// created through the admin surface only; student-facing operations never
// mutate them.
// swagger:model Course
type Course struct {
	UUIDBase
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ThumbnailURL string    `gorm:"size:512" json:"thumbnailUrl"`
	VideoURL     string    `gorm:"size:512" json:"videoUrl"`
	Sections     []Section `gorm:"foreignKey:CourseID" json:"sections,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Section belongs to exactly one course. Position is unique per course and
// defines ascending display order.
// swagger:model Section
type Section struct {
	UUIDBase
	CourseID    string `gorm:"type:varchar(36);index:idx_course_position,unique;not null" json:"courseId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Position    int    `gorm:"index:idx_course_position,unique;not null" json:"position"`
}

func (Section) TableName() string {
	return "sections"
}
