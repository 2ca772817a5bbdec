package userValidator

import (
	userController "lms/controllers/user"
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors flattens validator errors into a field -> message map
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[fe.Field()] = "Failed on '" + fe.Tag() + "' validation"
		}
	} else {
		errors["body"] = err.Error()
	}
	return errors
}

// Purchase validates the checkout request body
func Purchase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(userController.PurchaseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedPurchase", reqData)
		return c.Next()
	}
}

// UpdateProgress validates the lecture-completion request body
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(userController.ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// GetProgress validates the progress read request body
func GetProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(userController.ProgressQueryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedProgressQuery", reqData)
		return c.Next()
	}
}

// AddRating validates the rating submission body
func AddRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(userController.RatingRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusOK, false, "Invalid details", nil)
		}
		c.Locals("validatedRating", reqData)
		return c.Next()
	}
}
