package utils

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
)

func courseWithRatings(ratings ...int) *courseModels.Course {
	course := &courseModels.Course{}
	for _, r := range ratings {
		course.Ratings = append(course.Ratings, courseModels.CourseRating{Rating: r})
	}
	return course
}

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"no discount", 100, 0, 100},
		{"flat discount", 100, 20, 80},
		{"fractional result", 50, 10, 45},
		{"rounds to two decimals", 49.99, 33, 33.49},
		{"free course", 0, 50, 0},
		{"full discount", 80, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := &courseModels.Course{Price: tt.price, Discount: tt.discount}
			assert.Equal(t, tt.want, EffectivePrice(course))
		})
	}
}

func TestAverageRatingFloorsMean(t *testing.T) {
	assert.Equal(t, 0, AverageRating(courseWithRatings()))
	assert.Equal(t, 4, AverageRating(courseWithRatings(4)))
	assert.Equal(t, 4, AverageRating(courseWithRatings(4, 5)))
	assert.Equal(t, 3, AverageRating(courseWithRatings(2, 5, 3)))
	assert.Equal(t, 5, AverageRating(courseWithRatings(5, 5, 5)))
}

func TestTotalLectures(t *testing.T) {
	course := &courseModels.Course{
		Chapters: []courseModels.Chapter{
			{Lectures: []courseModels.Lecture{{}, {}, {}}},
			{Lectures: []courseModels.Lecture{{}}},
			{},
		},
	}
	assert.Equal(t, 4, TotalLectures(course))
	assert.Equal(t, 0, TotalLectures(&courseModels.Course{}))
}

func TestCourseDuration(t *testing.T) {
	course := &courseModels.Course{
		Chapters: []courseModels.Chapter{
			{Lectures: []courseModels.Lecture{{Duration: 45}, {Duration: 30}}},
			{Lectures: []courseModels.Lecture{{Duration: 75}}},
		},
	}
	assert.Equal(t, "2h 30m", CourseDuration(course))
	assert.Equal(t, "0m", CourseDuration(&courseModels.Course{}))

	hourOnly := &courseModels.Course{
		Chapters: []courseModels.Chapter{
			{Lectures: []courseModels.Lecture{{Duration: 120}}},
		},
	}
	assert.Equal(t, "2h", CourseDuration(hourOnly))
}

func TestChapterDuration(t *testing.T) {
	chapter := &courseModels.Chapter{
		Lectures: []courseModels.Lecture{{Duration: 20}, {Duration: 25}},
	}
	assert.Equal(t, "45m", ChapterDuration(chapter))
}
