package educatorController

import (
	userController "lms/controllers/user"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// requireEducator resolves the caller and checks the educator role
func requireEducator(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := userController.FindOrCreateUser(database.Database.Db, userID)
	if err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusOK, false, "User not found and could not be created!", nil)
	}
	if user.Role != "educator" {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized Access", nil)
	}
	return user, nil
}

// UpdateRoleToEducator promotes the caller to educator
func UpdateRoleToEducator(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := userController.FindOrCreateUser(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "User not found and could not be created!", nil)
	}

	if err := database.Database.Db.Model(user).Update("role", "educator").Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "You can publish a course now", nil)
}

// AddCourse creates a course owned by the caller
func AddCourse(c *fiber.Ctx) error {
	user, err := requireEducator(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedCourse").(*AddCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Thumbnail:   reqData.Thumbnail,
		Price:       reqData.Price,
		Discount:    reqData.Discount,
		EducatorID:  user.ID,
		IsPublished: reqData.IsPublished,
	}
	for ci, ch := range reqData.Chapters {
		chapter := courseModels.Chapter{Title: ch.Title, OrderIndex: ci}
		for li, lec := range ch.Lectures {
			chapter.Lectures = append(chapter.Lectures, courseModels.Lecture{
				Title:         lec.Title,
				Duration:      lec.Duration,
				LectureURL:    lec.LectureURL,
				IsPreviewFree: lec.IsPreviewFree,
				OrderIndex:    li,
			})
		}
		course.Chapters = append(course.Chapters, chapter)
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course Added", fiber.Map{"course": course})
}

// GetEducatorCourses returns the caller's courses
func GetEducatorCourses(c *fiber.Ctx) error {
	user, err := requireEducator(c)
	if err != nil {
		return err
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("educator_id = ?", user.ID).
		Preload("Chapters.Lectures").
		Preload("Ratings").
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched!", fiber.Map{"courses": courses})
}

// EnrolledStudentData is one row of the educator's enrollment report
type EnrolledStudentData struct {
	Student      models.User `json:"student"`
	CourseTitle  string      `json:"courseTitle"`
	PurchaseDate string      `json:"purchaseDate"`
}

// GetEnrolledStudents lists students with completed purchases of the
// caller's courses, most recent first
func GetEnrolledStudents(c *fiber.Ctx) error {
	user, err := requireEducator(c)
	if err != nil {
		return err
	}

	db := database.Database.Db

	var courseIDs []uint
	db.Model(&courseModels.Course{}).Where("educator_id = ?", user.ID).Pluck("id", &courseIDs)

	var purchases []courseModels.Purchase
	if err := db.Where("course_id IN ? AND status = ?", courseIDs, courseModels.PurchaseCompleted).
		Order("created_at desc").
		Find(&purchases).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrolled students!", nil)
	}

	enrolled := make([]EnrolledStudentData, 0, len(purchases))
	for _, purchase := range purchases {
		var student models.User
		if db.Where("id = ?", purchase.UserID).First(&student).Error != nil {
			continue
		}
		var course courseModels.Course
		if db.Where("id = ?", purchase.CourseID).First(&course).Error != nil {
			continue
		}
		enrolled = append(enrolled, EnrolledStudentData{
			Student:      student,
			CourseTitle:  course.Title,
			PurchaseDate: purchase.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled students fetched!", fiber.Map{"enrolledStudents": enrolled})
}

// GetDashboardData returns the educator's earnings and enrollment summary
func GetDashboardData(c *fiber.Ctx) error {
	user, err := requireEducator(c)
	if err != nil {
		return err
	}

	db := database.Database.Db

	var courseIDs []uint
	db.Model(&courseModels.Course{}).Where("educator_id = ?", user.ID).Pluck("id", &courseIDs)

	var totalEarnings float64
	db.Model(&courseModels.Purchase{}).
		Where("course_id IN ? AND status = ?", courseIDs, courseModels.PurchaseCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalEarnings)

	var totalEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("course_id IN ?", courseIDs).Count(&totalEnrollments)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard data fetched!", fiber.Map{
		"dashboardData": fiber.Map{
			"totalEarnings":    totalEarnings,
			"totalEnrollments": totalEnrollments,
			"totalCourses":     len(courseIDs),
		},
	})
}
