package webhookController

import (
	"encoding/json"
	"errors"
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v76"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfirmPurchase moves a purchase to COMPLETED and grants the enrollment in
// one transaction. Redelivered confirmations are no-ops: a completed purchase
// stays completed and the enrollment insert is add-if-absent, so the enrolled
// set never gains a duplicate.
func ConfirmPurchase(db *gorm.DB, purchaseID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var purchase courseModels.Purchase
		if err := tx.Where("id = ?", purchaseID).First(&purchase).Error; err != nil {
			return errors.New("Purchase not found")
		}

		if purchase.Status == courseModels.PurchaseCompleted {
			return nil
		}
		if purchase.Status == courseModels.PurchaseFailed {
			// Terminal state; a late confirmation cannot resurrect it
			log.Printf("Ignoring confirmation for failed purchase %s", purchaseID)
			return nil
		}

		// Conditional update so a concurrent confirmation cannot double-apply
		res := tx.Model(&courseModels.Purchase{}).
			Where("id = ? AND status = ?", purchaseID, courseModels.PurchasePending).
			Update("status", courseModels.PurchaseCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race; whoever won already settled the outcome
			return nil
		}

		enrollment := courseModels.Enrollment{
			UserID:   purchase.UserID,
			CourseID: purchase.CourseID,
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&enrollment).Error
	})
}

// FailPurchase marks a purchase FAILED unless it already completed. Completed
// and failed are terminal; nothing moves backward.
func FailPurchase(db *gorm.DB, purchaseID string) error {
	return db.Model(&courseModels.Purchase{}).
		Where("id = ? AND status = ?", purchaseID, courseModels.PurchasePending).
		Update("status", courseModels.PurchaseFailed).Error
}

// StripeWebhook consumes asynchronous payment outcomes from Stripe. The
// purchase id travels back in the session metadata set at checkout creation.
func StripeWebhook(c *fiber.Ctx) error {
	event, err := utils.VerifyWebhookEvent(c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid webhook signature!", nil)
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Malformed event payload!", nil)
		}

		purchaseID := session.Metadata["purchaseId"]
		if purchaseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing purchaseId metadata!", nil)
		}

		if err := ConfirmPurchase(database.Database.Db, purchaseID); err != nil {
			log.Printf("Failed to confirm purchase %s: %v", purchaseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm purchase!", nil)
		}

		notifyEnrollment(purchaseID)

	case "checkout.session.expired":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Malformed event payload!", nil)
		}

		if purchaseID := session.Metadata["purchaseId"]; purchaseID != "" {
			if err := FailPurchase(database.Database.Db, purchaseID); err != nil {
				log.Printf("Failed to fail purchase %s: %v", purchaseID, err)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Received", nil)
}

// notifyEnrollment sends the confirmation email for a completed purchase
func notifyEnrollment(purchaseID string) {
	db := database.Database.Db

	var purchase courseModels.Purchase
	if err := db.Where("id = ?", purchaseID).First(&purchase).Error; err != nil {
		return
	}

	var user models.User
	var course courseModels.Course
	if db.Where("id = ?", purchase.UserID).First(&user).Error != nil ||
		db.Where("id = ?", purchase.CourseID).First(&course).Error != nil {
		return
	}

	utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)
}
