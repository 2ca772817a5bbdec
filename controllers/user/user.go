package userController

import (
	"errors"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindOrCreateUser resolves the local user for a Clerk id, provisioning it
// from the Clerk profile on first access. The insert uses ON CONFLICT DO
// NOTHING so a concurrent first request for the same id resolves to the
// existing row instead of failing.
func FindOrCreateUser(db *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	err := db.Where("id = ?", userID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	clerkUser, err := utils.Clerk.GetUser(userID)
	if err != nil {
		// No local record without profile data; a phantom user must not
		// be enrollable.
		return nil, err
	}

	user = models.User{
		ID:       clerkUser.ID,
		Email:    clerkUser.Email(),
		Name:     clerkUser.DisplayName(),
		ImageURL: clerkUser.ImageURL,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
		return nil, err
	}

	// Re-read so a lost duplicate-create race still yields the stored row
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserData returns the caller's user record, creating it on first access
func GetUserData(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := FindOrCreateUser(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "User not found and could not be created!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User data fetched!", fiber.Map{"user": user})
}

// GetEnrolledCourses returns the caller's enrolled courses with content
func GetEnrolledCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if _, err := FindOrCreateUser(database.Database.Db, userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "User not found and could not be created!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).
		Preload("Course.Chapters.Lectures").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	courses := make([]courseModels.Course, 0, len(enrollments))
	for _, enrollment := range enrollments {
		courses = append(courses, enrollment.Course)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched!", fiber.Map{"enrolledCourses": courses})
}
