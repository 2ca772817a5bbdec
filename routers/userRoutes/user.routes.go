package userRoutes

import (
	controllers "lms/controllers/user"
	"lms/middleware"
	validators "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up all student-facing routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/user")

	userGroup.Get("/data", middleware.ClerkAuth, controllers.GetUserData)
	userGroup.Get("/enrolled-courses", middleware.ClerkAuth, controllers.GetEnrolledCourses)
	userGroup.Post("/purchase", middleware.ClerkAuth, validators.Purchase(), controllers.PurchaseCourse)
	userGroup.Post("/update-course-progress", middleware.ClerkAuth, validators.UpdateProgress(), controllers.UpdateCourseProgress)
	userGroup.Post("/get-course-progress", middleware.ClerkAuth, validators.GetProgress(), controllers.GetCourseProgress)
	userGroup.Post("/add-rating", middleware.ClerkAuth, validators.AddRating(), controllers.AddCourseRating)
}
