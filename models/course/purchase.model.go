package course

import "time"

// Purchase status values. A purchase only ever moves forward:
// PENDING -> COMPLETED or PENDING -> FAILED.
const (
	PurchasePending   = "PENDING"
	PurchaseCompleted = "COMPLETED"
	PurchaseFailed    = "FAILED"
)

// Purchase records one checkout attempt. Amount is frozen at creation time
// from the course's effective price; later price changes never touch it.
type Purchase struct {
	ID        string  `json:"_id" gorm:"primaryKey"`
	CourseID  uint    `json:"courseId" gorm:"index;not null"`
	UserID    string  `json:"userId" gorm:"index;not null"`
	Amount    float64 `json:"amount" gorm:"not null"` // two-decimal major units
	Status    string  `json:"status" gorm:"default:'PENDING'"`
	SessionID string  `json:"-"` // Stripe checkout session reference
	CreatedAt time.Time
	UpdatedAt time.Time
}
