package utils

import (
	"log"
	"time"

	"lms/config"
	courseModels "lms/models/course"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ExpireStalePurchases fails purchases that have been pending longer than the
// configured TTL. A pending purchase whose checkout session was abandoned can
// never complete; failing it keeps the state machine free of orphans.
func ExpireStalePurchases(db *gorm.DB, ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl)

	res := db.Model(&courseModels.Purchase{}).
		Where("status = ? AND created_at < ?", courseModels.PurchasePending, cutoff).
		Update("status", courseModels.PurchaseFailed)

	return res.RowsAffected, res.Error
}

// StartPurchaseScheduler runs the stale-purchase expiry job hourly
func StartPurchaseScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	ttl := time.Duration(config.AppConfig.PendingPurchaseTTL) * time.Hour

	c.AddFunc("@hourly", func() {
		expired, err := ExpireStalePurchases(db, ttl)
		if err != nil {
			log.Printf("Purchase expiry job failed: %v", err)
			return
		}
		if expired > 0 {
			log.Printf("Expired %d stale pending purchases", expired)
		}
	})

	c.Start()
	return c
}
