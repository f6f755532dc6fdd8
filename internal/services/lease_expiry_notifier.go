package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

// LeaseExpiryNotifier periodically writes an in-app notification to each
// property owner whose active lease ends within the horizon. One notification
// per lease per day.
type LeaseExpiryNotifier struct {
	database *gorm.DB
	interval time.Duration

	mu       sync.Mutex
	sentKeys map[string]time.Time
}

func NewLeaseExpiryNotifier(database *gorm.DB) *LeaseExpiryNotifier {
	return &LeaseExpiryNotifier{
		database: database,
		interval: 6 * time.Hour,
		sentKeys: make(map[string]time.Time),
	}
}

func (notifier *LeaseExpiryNotifier) Start(ctx context.Context) {
	ticker := time.NewTicker(notifier.interval)
	go func() {
		defer ticker.Stop()

		notifier.runOnce(ctx, time.Now())
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				notifier.runOnce(ctx, time.Now())
			}
		}
	}()
}

// RunOnce performs a single scan. Exposed for tests.
func (notifier *LeaseExpiryNotifier) RunOnce(ctx context.Context, now time.Time) {
	notifier.runOnce(ctx, now)
}

func (notifier *LeaseExpiryNotifier) runOnce(ctx context.Context, now time.Time) {
	today := truncateToDay(now)
	horizon := today.AddDate(0, 0, expiryHorizonDays)

	leases := make([]models.Lease, 0)
	if err := notifier.database.WithContext(ctx).
		Preload("Property").
		Where("status = ? AND end_date >= ? AND end_date <= ?", models.LeaseStatusActive, today, horizon).
		Find(&leases).Error; err != nil {
		log.Printf("notifier: fetch expiring leases failed: %v", err)
		return
	}

	notifications := db.NewNotificationRepository(notifier.database.WithContext(ctx))
	for _, lease := range leases {
		key := fmt.Sprintf("lease:%d:%s", lease.ID, today.Format("2006-01-02"))
		if !notifier.shouldSend(key, today) {
			continue
		}

		notification := models.Notification{
			UserID:           lease.Property.OwnerID,
			NotificationType: models.NotificationTypeLeaseExpiry,
			Message: fmt.Sprintf("Lease for %s ends on %s.",
				lease.Property.Address,
				lease.EndDate.Format("Jan 2, 2006"),
			),
			CreatedAt: now,
		}
		if err := notifications.Create(&notification); err != nil {
			log.Printf("notifier: create notification for lease %d failed: %v", lease.ID, err)
		}
	}
}

func (notifier *LeaseExpiryNotifier) shouldSend(key string, today time.Time) bool {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	if sentOn, ok := notifier.sentKeys[key]; ok && sentOn.Equal(today) {
		return false
	}
	notifier.sentKeys[key] = today
	if len(notifier.sentKeys) > 1000 {
		notifier.sentKeys = make(map[string]time.Time)
	}
	return true
}
