package service

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSectionOrdering(t *testing.T) {
	env := newTestEnv(t)
	// sections are inserted in reverse order by the helper
	mustCourse(t, env.db, "ordered", 1, 2, 3, 4)

	cards, err := env.catalog.Dashboard(1)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	require.Len(t, cards[0].Sections, 4)

	for i, section := range cards[0].Sections {
		assert.Equal(t, i+1, section.Position, "sections must come back ascending by position")
	}
}

func TestDashboardCompletionAndPercent(t *testing.T) {
	env := newTestEnv(t)
	course := mustCourse(t, env.db, "go", 1, 2, 3)
	const userID = 7

	_, err := env.enrollment.Enroll(userID, course.ID)
	require.NoError(t, err)

	_, err = env.enrollment.CompleteSection(userID, course.Sections[0].ID)
	require.NoError(t, err)

	cards, err := env.catalog.Dashboard(userID)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	card := cards[0]
	assert.True(t, card.IsEnrolled)
	assert.Equal(t, 33, card.Progress)

	completed := 0
	for _, s := range card.Sections {
		if s.Completed {
			completed++
			assert.Equal(t, course.Sections[0].ID, s.ID)
		}
	}
	assert.Equal(t, 1, completed)
}

func TestDashboardCourseWithoutSections(t *testing.T) {
	env := newTestEnv(t)
	mustCourse(t, env.db, "empty")

	cards, err := env.catalog.Dashboard(1)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, 0, cards[0].Progress)
	assert.Empty(t, cards[0].Sections)
}

func TestDashboardIsEnrolledPerCourse(t *testing.T) {
	env := newTestEnv(t)
	enrolled := mustCourse(t, env.db, "enrolled", 1)
	mustCourse(t, env.db, "other", 1)
	const userID = 3

	_, err := env.enrollment.Enroll(userID, enrolled.ID)
	require.NoError(t, err)

	cards, err := env.catalog.Dashboard(userID)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	byID := map[string]model.DashboardCourse{}
	for _, card := range cards {
		byID[card.ID] = card
	}
	assert.True(t, byID[enrolled.ID].IsEnrolled)
	for id, card := range byID {
		if id != enrolled.ID {
			assert.False(t, card.IsEnrolled)
		}
	}
}

func TestCourseDetailNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.CourseDetail(1, "no-such-course")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCourseDetailProgressScalar(t *testing.T) {
	env := newTestEnv(t)
	course := mustCourse(t, env.db, "scalar", 1, 2)
	const userID = 9

	// without an enrollment the scalar defaults to 0
	detail, err := env.catalog.CourseDetail(userID, course.ID)
	require.NoError(t, err)
	assert.False(t, detail.IsEnrolled)
	assert.Equal(t, 0, detail.Progress)

	_, err = env.enrollment.Enroll(userID, course.ID)
	require.NoError(t, err)
	_, err = env.enrollment.BumpProgress(userID, course.ID)
	require.NoError(t, err)

	detail, err = env.catalog.CourseDetail(userID, course.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsEnrolled)
	assert.Equal(t, 10, detail.Progress)
}

// The detail page reads the stored scalar while the dashboard derives its
// percentage from completions; neither value feeds the other.
func TestProgressModelsDiverge(t *testing.T) {
	env := newTestEnv(t)
	course := mustCourse(t, env.db, "diverge", 1, 2)
	const userID = 4

	_, err := env.enrollment.Enroll(userID, course.ID)
	require.NoError(t, err)

	// complete every section but never bump the scalar
	for _, section := range course.Sections {
		_, err = env.enrollment.CompleteSection(userID, section.ID)
		require.NoError(t, err)
	}

	cards, err := env.catalog.Dashboard(userID)
	require.NoError(t, err)
	assert.Equal(t, 100, cards[0].Progress)

	detail, err := env.catalog.CourseDetail(userID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, detail.Progress)
}

// A failing enrollment read must fail the whole dashboard call; a payload
// with courses but missing enrollment state would render as not-enrolled.
func TestDashboardFailsWhenEnrollmentsUnreadable(t *testing.T) {
	env := newTestEnv(t)
	mustCourse(t, env.db, "go", 1, 2)
	require.NoError(t, env.db.Migrator().DropTable("enrollments"))

	cards, err := env.catalog.Dashboard(1)
	assert.Error(t, err)
	assert.Nil(t, cards)
}

func TestDashboardFailsWhenCompletionsUnreadable(t *testing.T) {
	env := newTestEnv(t)
	mustCourse(t, env.db, "go", 1)
	require.NoError(t, env.db.Migrator().DropTable("section_completions"))

	cards, err := env.catalog.Dashboard(1)
	assert.Error(t, err)
	assert.Nil(t, cards)
}

func TestListCoursesSectionsOrdered(t *testing.T) {
	env := newTestEnv(t)
	mustCourse(t, env.db, "a", 1, 2, 3)

	courses, err := env.catalog.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 1)

	positions := make([]int, 0, len(courses[0].Sections))
	for _, s := range courses[0].Sections {
		positions = append(positions, s.Position)
	}
	assert.Equal(t, []int{1, 2, 3}, positions)
}
