package utils

import (
	"testing"
	"time"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestExpireStalePurchases(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&courseModels.Purchase{}))

	old := time.Now().Add(-48 * time.Hour)
	purchases := []courseModels.Purchase{
		{ID: "p_stale", UserID: "u", CourseID: 1, Status: courseModels.PurchasePending, CreatedAt: old},
		{ID: "p_fresh", UserID: "u", CourseID: 1, Status: courseModels.PurchasePending},
		{ID: "p_done", UserID: "u", CourseID: 1, Status: courseModels.PurchaseCompleted, CreatedAt: old},
	}
	for i := range purchases {
		require.NoError(t, db.Create(&purchases[i]).Error)
	}

	expired, err := ExpireStalePurchases(db, 24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, expired)

	var fetched courseModels.Purchase
	require.NoError(t, db.First(&fetched, "id = ?", "p_stale").Error)
	assert.Equal(t, courseModels.PurchaseFailed, fetched.Status)

	fetched = courseModels.Purchase{}
	require.NoError(t, db.First(&fetched, "id = ?", "p_fresh").Error)
	assert.Equal(t, courseModels.PurchasePending, fetched.Status, "fresh purchases stay pending")

	fetched = courseModels.Purchase{}
	require.NoError(t, db.First(&fetched, "id = ?", "p_done").Error)
	assert.Equal(t, courseModels.PurchaseCompleted, fetched.Status, "completed is terminal")
}
