package userController

import (
	"errors"
	"net/http/httptest"
	"testing"

	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubPayments struct {
	lastRequest utils.CheckoutRequest
	err         error
}

func (s *stubPayments) CreateCheckoutSession(req utils.CheckoutRequest) (*utils.CheckoutSession, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return &utils.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.test/cs_test_123"}, nil
}

// purchaseApp wires the handler the way the router does, with the auth and
// validation middlewares replaced by canned locals
func purchaseApp(userID string, courseID uint) *fiber.App {
	app := fiber.New()
	app.Post("/purchase", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		c.Locals("validatedPurchase", &PurchaseRequest{CourseID: courseID})
		return c.Next()
	}, PurchaseCourse)
	return app
}

func seedUser(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{ID: id, Email: id + "@example.com", Name: "Student"}).Error)
}

func TestPurchaseFreezesEffectivePrice(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 100, 20, 2)
	seedUser(t, db, "user_buyer")

	payments := &stubPayments{}
	prev := utils.Payments
	utils.Payments = payments
	defer func() { utils.Payments = prev }()

	app := purchaseApp("user_buyer", course.ID)
	resp, err := app.Test(httptest.NewRequest("POST", "/purchase", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var purchase courseModels.Purchase
	require.NoError(t, db.Where("user_id = ?", "user_buyer").First(&purchase).Error)
	assert.Equal(t, 80.00, purchase.Amount)
	assert.Equal(t, courseModels.PurchasePending, purchase.Status)
	assert.Equal(t, "cs_test_123", purchase.SessionID)
	assert.Equal(t, int64(8000), int64(payments.lastRequest.Amount*100), "provider receives floored minor units")

	// A later discount change must not retroactively alter the amount
	require.NoError(t, db.Model(&courseModels.Course{}).Where("id = ?", course.ID).Update("discount", 50).Error)
	require.NoError(t, db.Where("id = ?", purchase.ID).First(&purchase).Error)
	assert.Equal(t, 80.00, purchase.Amount)
}

func TestPurchaseCourseNotFound(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user_buyer")

	app := purchaseApp("user_buyer", 9999)
	resp, err := app.Test(httptest.NewRequest("POST", "/purchase", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var count int64
	db.Model(&courseModels.Purchase{}).Count(&count)
	assert.Zero(t, count)
}

func TestPurchaseSessionFailureFailsPurchase(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 50, 10, 1)
	seedUser(t, db, "user_buyer")

	prev := utils.Payments
	utils.Payments = &stubPayments{err: errors.New("stripe unavailable")}
	defer func() { utils.Payments = prev }()

	app := purchaseApp("user_buyer", course.ID)
	resp, err := app.Test(httptest.NewRequest("POST", "/purchase", nil))
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)

	// The purchase row exists but must not linger in PENDING
	var purchase courseModels.Purchase
	require.NoError(t, db.Where("user_id = ?", "user_buyer").First(&purchase).Error)
	assert.Equal(t, courseModels.PurchaseFailed, purchase.Status)
}
