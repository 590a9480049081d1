package utils

import (
	"coursecart/database"
	"coursecart/models"
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[ORDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// CancelStalePendingOrders cancels orders that never completed. Checkout is
// transactional, so a lingering pending order means the process died between
// statements or the row predates the transactional workflow; sweeping them to
// cancelled is the compensating cleanup.
func CancelStalePendingOrders() {
	db := database.Database.Db
	cutoff := time.Now().Add(-24 * time.Hour)

	result := db.Model(&models.Order{}).
		Where("status = ? AND is_deleted = ? AND created_at < ?", models.OrderPending, false, cutoff).
		Update("status", models.OrderCancelled)
	if result.Error != nil {
		logScheduler("Error cancelling stale pending orders: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logScheduler("Cancelled stale pending orders")
	}
}

// DeactivateExpiredDiscountCodes flips active off for codes whose expiry day
// has fully passed.
func DeactivateExpiredDiscountCodes() {
	db := database.Database.Db
	endOfYesterday := now.With(time.Now().AddDate(0, 0, -1)).EndOfDay()

	result := db.Model(&models.DiscountCode{}).
		Where("active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, endOfYesterday).
		Update("active", false)
	if result.Error != nil {
		logScheduler("Error deactivating expired discount codes: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logScheduler("Deactivated expired discount codes")
	}
}

// InitializeOrderScheduler sets up the periodic maintenance jobs
func InitializeOrderScheduler() *cron.Cron {
	logScheduler("Initializing order scheduler...")

	c := cron.New()

	// Hourly sweep of orders stuck in pending
	c.AddFunc("0 * * * *", func() {
		CancelStalePendingOrders()
	})

	// Daily discount code expiry at 00:15
	c.AddFunc("15 0 * * *", func() {
		DeactivateExpiredDiscountCodes()
	})

	c.Start()

	logScheduler("Order scheduler started")
	return c
}
