package model

// View structs returned by the catalog service. They carry read-derived
// state only and are rebuilt from scratch on every fetch.

// swagger:model SectionView
type SectionView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Position    int    `json:"position"`
	Completed   bool   `json:"completed"`
}

// DashboardCourse is a course card on the dashboard: sections in display
// order with completion flags, plus the percentage derived from them.
// swagger:model DashboardCourse
type DashboardCourse struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	ThumbnailURL string        `json:"thumbnailUrl"`
	VideoURL     string        `json:"videoUrl"`
	Sections     []SectionView `json:"sections"`
	IsEnrolled   bool          `json:"isEnrolled"`
	Progress     int           `json:"progress"`
}

// CourseDetail is the course page payload. Progress here is the stored
// enrollment scalar (0 without an enrollment), not the computed percentage.
// swagger:model CourseDetail
type CourseDetail struct {
	Course     Course `json:"course"`
	IsEnrolled bool   `json:"isEnrolled"`
	Progress   int    `json:"progress"`
}
