package userController

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lectureIDs(t *testing.T, course *courseModels.Course) []uint {
	t.Helper()
	var ids []uint
	for _, chapter := range course.Chapters {
		for _, lecture := range chapter.Lectures {
			ids = append(ids, lecture.ID)
		}
	}
	return ids
}

func TestMarkLectureCompleteCreatesProgress(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 50, 0, 2, 1)
	lectures := lectureIDs(t, course)

	alreadyDone, err := MarkLectureComplete(db, "user_u1", course.ID, lectures[0])
	require.NoError(t, err)
	assert.False(t, alreadyDone)

	var progress courseModels.CourseProgress
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", "user_u1", course.ID).First(&progress).Error)
	assert.False(t, progress.Completed, "one of three lectures is not full completion")

	var count int64
	db.Model(&courseModels.LectureCompletion{}).Where("user_id = ?", "user_u1").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestMarkLectureCompleteIdempotent(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 50, 0, 3)
	lectures := lectureIDs(t, course)

	_, err := MarkLectureComplete(db, "user_u1", course.ID, lectures[0])
	require.NoError(t, err)

	alreadyDone, err := MarkLectureComplete(db, "user_u1", course.ID, lectures[0])
	require.NoError(t, err)
	assert.True(t, alreadyDone, "re-marking reports already completed and still succeeds")

	var count int64
	db.Model(&courseModels.LectureCompletion{}).Where("user_id = ?", "user_u1").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestMarkLectureCompleteMonotonic(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 50, 0, 3, 2)
	lectures := lectureIDs(t, course)

	seen := int64(0)
	for _, id := range lectures {
		_, err := MarkLectureComplete(db, "user_u1", course.ID, id)
		require.NoError(t, err)

		var count int64
		db.Model(&courseModels.LectureCompletion{}).
			Where("user_id = ? AND course_id = ?", "user_u1", course.ID).
			Count(&count)
		assert.GreaterOrEqual(t, count, seen, "the completed set never shrinks")
		seen = count
	}
	assert.EqualValues(t, len(lectures), seen)
}

func TestCompletedFlagReflectsFullCompletion(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 50, 0, 2)
	lectures := lectureIDs(t, course)
	require.Len(t, lectures, 2)

	_, err := MarkLectureComplete(db, "user_u1", course.ID, lectures[0])
	require.NoError(t, err)

	var progress courseModels.CourseProgress
	require.NoError(t, db.Where("user_id = ?", "user_u1").First(&progress).Error)
	assert.False(t, progress.Completed, "partial progress must not complete the course")

	_, err = MarkLectureComplete(db, "user_u1", course.ID, lectures[1])
	require.NoError(t, err)

	require.NoError(t, db.Where("user_id = ?", "user_u1").First(&progress).Error)
	assert.True(t, progress.Completed, "all lectures done completes the course")

	// Re-marking anything afterwards never clears the flag
	alreadyDone, err := MarkLectureComplete(db, "user_u1", course.ID, lectures[0])
	require.NoError(t, err)
	assert.True(t, alreadyDone)

	require.NoError(t, db.Where("user_id = ?", "user_u1").First(&progress).Error)
	assert.True(t, progress.Completed)
}
