package userController

import (
	"errors"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MarkLectureComplete records one completed lecture for a (user, course)
// pair. The completion set only grows; marking an already-completed lecture
// is a no-op. The course-level completed flag turns true once every lecture
// of the course is done and is never cleared afterwards.
func MarkLectureComplete(db *gorm.DB, userID string, courseID, lectureID uint) (alreadyDone bool, err error) {
	var existing courseModels.LectureCompletion
	err = db.Where("user_id = ? AND course_id = ? AND lecture_id = ?", userID, courseID, lectureID).
		First(&existing).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	progress := courseModels.CourseProgress{UserID: userID, CourseID: courseID}
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).
		FirstOrCreate(&progress).Error; err != nil {
		return false, err
	}

	completion := courseModels.LectureCompletion{
		UserID:    userID,
		CourseID:  courseID,
		LectureID: lectureID,
	}
	// Add-if-absent; a concurrent duplicate mark is still a success
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&completion).Error; err != nil {
		return false, err
	}

	if !progress.Completed {
		var completed int64
		db.Model(&courseModels.LectureCompletion{}).
			Where("user_id = ? AND course_id = ?", userID, courseID).
			Count(&completed)

		var total int64
		db.Model(&courseModels.Lecture{}).
			Joins("JOIN chapters ON chapters.id = lectures.chapter_id").
			Where("chapters.course_id = ?", courseID).
			Count(&total)

		if total > 0 && completed >= total {
			if err := db.Model(&courseModels.CourseProgress{}).
				Where("user_id = ? AND course_id = ?", userID, courseID).
				Update("completed", true).Error; err != nil {
				return false, err
			}
		}
	}

	return false, nil
}

// UpdateCourseProgress marks a lecture complete for the caller
func UpdateCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*ProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	alreadyDone, err := MarkLectureComplete(database.Database.Db, userID, reqData.CourseID, reqData.LectureID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}
	if alreadyDone {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture Already Completed", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress Updated", nil)
}

// GetCourseProgress returns the caller's progress record for a course.
// Absent progress is not an error; the payload is simply null.
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProgressQuery").(*ProgressQueryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var progress courseModels.CourseProgress
	err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).
		Preload("LectureCompleted").
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched!", fiber.Map{"progressData": nil})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched!", fiber.Map{"progressData": progress})
}
