package userController

import (
	"log"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PurchaseCourse creates a pending purchase with the effective price frozen
// at this instant and hands off to the payment provider. The returned session
// URL is where the client completes payment; the outcome arrives later on the
// webhook.
func PurchaseCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPurchase").(*PurchaseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	user, err := FindOrCreateUser(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "User not found and could not be created!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_published = ?", reqData.CourseID, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course Not Found", nil)
	}

	purchase := courseModels.Purchase{
		ID:       uuid.NewString(),
		CourseID: course.ID,
		UserID:   user.ID,
		Amount:   utils.EffectivePrice(&course),
		Status:   courseModels.PurchasePending,
	}
	if err := db.Create(&purchase).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create purchase!", nil)
	}

	session, err := utils.Payments.CreateCheckoutSession(utils.CheckoutRequest{
		Amount:      purchase.Amount,
		ProductName: course.Title,
		PurchaseID:  purchase.ID,
		Origin:      c.Get("Origin"),
	})
	if err != nil {
		// A purchase whose session never existed can never complete;
		// fail it now rather than leave it pending forever.
		log.Printf("Checkout session creation failed for purchase %s: %v", purchase.ID, err)
		db.Model(&purchase).Update("status", courseModels.PurchaseFailed)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to start checkout!", nil)
	}

	db.Model(&purchase).Update("session_id", session.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout session created!", fiber.Map{"session_url": session.URL})
}
