package educatorValidator

import (
	educatorController "lms/controllers/educator"
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AddCourse validates the course creation body
func AddCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(educatorController.AddCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					errors[fe.Field()] = "Failed on '" + fe.Tag() + "' validation"
				}
			} else {
				errors["body"] = err.Error()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
