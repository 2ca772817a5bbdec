package educatorRoutes

import (
	controllers "lms/controllers/educator"
	"lms/middleware"
	validators "lms/validators/educator"

	"github.com/gofiber/fiber/v2"
)

// SetupEducatorRoutes sets up all educator routes
func SetupEducatorRoutes(app *fiber.App) {
	educatorGroup := app.Group("/api/educator")

	educatorGroup.Get("/update-role", middleware.ClerkAuth, controllers.UpdateRoleToEducator)
	educatorGroup.Post("/add-course", middleware.ClerkAuth, validators.AddCourse(), controllers.AddCourse)
	educatorGroup.Get("/courses", middleware.ClerkAuth, controllers.GetEducatorCourses)
	educatorGroup.Get("/enrolled-students", middleware.ClerkAuth, controllers.GetEnrolledStudents)
	educatorGroup.Get("/dashboard", middleware.ClerkAuth, controllers.GetDashboardData)
}
