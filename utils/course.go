package utils

import (
	"fmt"
	"math"

	courseModels "lms/models/course"
)

// EffectivePrice is the list price minus the percentage discount, rounded to
// two decimals. Always derived, never stored.
func EffectivePrice(course *courseModels.Course) float64 {
	amount := course.Price - course.Price*course.Discount/100
	return math.Round(amount*100) / 100
}

// AverageRating is the floor of the mean rating, 0 when unrated
func AverageRating(course *courseModels.Course) int {
	if len(course.Ratings) == 0 {
		return 0
	}
	total := 0
	for _, r := range course.Ratings {
		total += r.Rating
	}
	return int(math.Floor(float64(total) / float64(len(course.Ratings))))
}

// TotalLectures counts lectures across all chapters
func TotalLectures(course *courseModels.Course) int {
	total := 0
	for _, chapter := range course.Chapters {
		total += len(chapter.Lectures)
	}
	return total
}

// ChapterDuration humanizes the summed lecture minutes of one chapter
func ChapterDuration(chapter *courseModels.Chapter) string {
	minutes := 0.0
	for _, lecture := range chapter.Lectures {
		minutes += lecture.Duration
	}
	return humanizeMinutes(minutes)
}

// CourseDuration humanizes the summed lecture minutes of the whole course
func CourseDuration(course *courseModels.Course) string {
	minutes := 0.0
	for _, chapter := range course.Chapters {
		for _, lecture := range chapter.Lectures {
			minutes += lecture.Duration
		}
	}
	return humanizeMinutes(minutes)
}

// humanizeMinutes renders a minute count as "Xh Ym" / "Xh" / "Ym"
func humanizeMinutes(minutes float64) string {
	total := int(math.Round(minutes))
	hours := total / 60
	mins := total % 60

	if hours > 0 && mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", mins)
}
