package userController

import (
	"testing"

	courseModels "lms/models/course"
	"lms/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRatingRejectsInvalidValues(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 50, 0, 2)
	enroll(t, db, "user_u1", course.ID)

	for _, rating := range []int{0, -1, 6, 100} {
		err := ApplyRating(db, "user_u1", course.ID, rating)
		assert.Error(t, err, "rating %d must be rejected", rating)
	}

	var count int64
	db.Model(&courseModels.CourseRating{}).Count(&count)
	assert.Zero(t, count)
}

func TestApplyRatingCourseNotFound(t *testing.T) {
	db := setupTestDB(t)

	err := ApplyRating(db, "user_u1", 9999, 4)
	require.Error(t, err)
	assert.Equal(t, "Course Not found!", err.Error())
}

func TestApplyRatingRequiresEnrollment(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 50, 10, 2)

	for rating := 1; rating <= 5; rating++ {
		err := ApplyRating(db, "user_nobuy", course.ID, rating)
		require.Error(t, err, "rating %d must be gated", rating)
		assert.Equal(t, "User has not purchased this course.", err.Error())
	}

	var count int64
	db.Model(&courseModels.CourseRating{}).Count(&count)
	assert.Zero(t, count, "the rating list must be unchanged")
}

func TestApplyRatingUpsertsSingleEntry(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 50, 10, 2)
	enroll(t, db, "user_u1", course.ID)

	for _, rating := range []int{2, 5, 3} {
		require.NoError(t, ApplyRating(db, "user_u1", course.ID, rating))
	}

	var ratings []courseModels.CourseRating
	db.Where("course_id = ?", course.ID).Find(&ratings)
	require.Len(t, ratings, 1, "exactly one entry per (user, course)")
	assert.Equal(t, "user_u1", ratings[0].UserID)
	assert.Equal(t, 3, ratings[0].Rating, "the last submission wins")
}

func TestApplyRatingNewUserFirstRating(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 50, 10, 2)
	enroll(t, db, "user_new", course.ID)

	require.NoError(t, ApplyRating(db, "user_new", course.ID, 4))

	var fetched courseModels.Course
	require.NoError(t, db.Preload("Ratings").First(&fetched, course.ID).Error)
	require.Len(t, fetched.Ratings, 1)
	assert.Equal(t, 4, fetched.Ratings[0].Rating)
	assert.Equal(t, 4, utils.AverageRating(&fetched))
}
