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

// ApplyRating upserts a user's rating of a course. Rating is purchase-gated:
// the user must hold an enrollment. One row per (course, user); resubmission
// overwrites the value in place.
func ApplyRating(db *gorm.DB, userID string, courseID uint, rating int) error {
	if rating < 1 || rating > 5 {
		return errors.New("Invalid rating value")
	}

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return errors.New("Course Not found!")
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return errors.New("User has not purchased this course.")
	}

	entry := courseModels.CourseRating{
		CourseID: courseID,
		UserID:   userID,
		Rating:   rating,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(&entry).Error
}

// AddCourseRating handles a rating submission from the caller
func AddCourseRating(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedRating").(*RatingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ApplyRating(database.Database.Db, userID, reqData.CourseID, reqData.Rating); err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating Added", nil)
}
