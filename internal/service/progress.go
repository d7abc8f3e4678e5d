package service

import "math"

// ProgressPercent derives the completion percentage the dashboard shows for
// a course. A course without sections counts as 0% complete.
func ProgressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// progressStep is the increment applied by the manual bump on the course
// detail page.
const progressStep = 10

// BumpProgress advances the stored enrollment scalar by one step, capped at
// 100.
func BumpProgress(current int) int {
	next := current + progressStep
	if next > 100 {
		return 100
	}
	return next
}
