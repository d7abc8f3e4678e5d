package model

// Enrollment links a user to a course. At most one row per (user, course),
// enforced by the unique index. Progress is the manually bumped scalar shown
// on the course detail page; it is independent from the percentage the
// dashboard derives from section completions.
// swagger:model Enrollment
type Enrollment struct {
	UUIDBase
	UserID   uint   `gorm:"index:idx_user_course,unique;not null" json:"userId"`
	CourseID string `gorm:"type:varchar(36);index:idx_user_course,unique;not null" json:"courseId"`
	Progress int    `gorm:"default:0" json:"progress"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
