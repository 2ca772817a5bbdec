package courseController

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// CourseView is a catalog projection: the stored course plus the values the
// presentation layer derives from it. Nothing here is persisted.
type CourseView struct {
	courseModels.Course
	EffectivePrice float64 `json:"effectivePrice"`
	AverageRating  int     `json:"averageRating"`
	TotalLectures  int     `json:"totalLectures"`
	Duration       string  `json:"duration"`
}

func newCourseView(course courseModels.Course) CourseView {
	return CourseView{
		Course:         course,
		EffectivePrice: utils.EffectivePrice(&course),
		AverageRating:  utils.AverageRating(&course),
		TotalLectures:  utils.TotalLectures(&course),
		Duration:       utils.CourseDuration(&course),
	}
}

// stripLockedLectures blanks lecture URLs that are not free previews so the
// public catalog never leaks paid content
func stripLockedLectures(course *courseModels.Course) {
	for i := range course.Chapters {
		for j := range course.Chapters[i].Lectures {
			if !course.Chapters[i].Lectures[j].IsPreviewFree {
				course.Chapters[i].Lectures[j].LectureURL = ""
			}
		}
	}
}

// GetAllCourses returns the published catalog with derived projections
func GetAllCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.Where("is_published = ?", true).
		Preload("Chapters.Lectures").
		Preload("Ratings").
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	views := make([]CourseView, 0, len(courses))
	for _, course := range courses {
		stripLockedLectures(&course)
		views = append(views, newCourseView(course))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched!", fiber.Map{"courses": views})
}

// GetCourseByID returns one published course with derived projections
func GetCourseByID(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_published = ?", courseID, true).
		Preload("Chapters.Lectures").
		Preload("Ratings").
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course Not Found", nil)
	}

	stripLockedLectures(&course)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched!", fiber.Map{"courseData": newCourseView(course)})
}
