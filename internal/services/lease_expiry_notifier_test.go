package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velmariner/rentora/internal/models"
)

func TestNotifierCreatesOneNotificationPerLeasePerDay(t *testing.T) {
	database := openTestDatabase(t)
	owner := seedUser(t, database, "owner", models.RoleOwner)
	property := seedProperty(t, database, owner.ID, "12 Elm Street")
	tenant := seedTenant(t, database, "renter")
	seedLease(t, database, property.ID, tenant.ID, models.LeaseStatusActive, time.Now().AddDate(0, 0, 10))

	notifier := NewLeaseExpiryNotifier(database)
	now := time.Now()
	notifier.RunOnce(context.Background(), now)
	notifier.RunOnce(context.Background(), now)

	var notifications []models.Notification
	require.NoError(t, database.Find(&notifications).Error)
	require.Len(t, notifications, 1, "a second scan on the same day must not duplicate")

	assert.Equal(t, owner.ID, notifications[0].UserID)
	assert.Equal(t, models.NotificationTypeLeaseExpiry, notifications[0].NotificationType)
	assert.Contains(t, notifications[0].Message, "12 Elm Street")
	assert.False(t, notifications[0].IsRead)
}

func TestNotifierSendsAgainOnNextDay(t *testing.T) {
	database := openTestDatabase(t)
	owner := seedUser(t, database, "owner", models.RoleOwner)
	property := seedProperty(t, database, owner.ID, "12 Elm Street")
	tenant := seedTenant(t, database, "renter")
	seedLease(t, database, property.ID, tenant.ID, models.LeaseStatusActive, time.Now().AddDate(0, 0, 10))

	notifier := NewLeaseExpiryNotifier(database)
	notifier.RunOnce(context.Background(), time.Now())
	notifier.RunOnce(context.Background(), time.Now().AddDate(0, 0, 1))

	var count int64
	require.NoError(t, database.Model(&models.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestNotifierSkipsLeasesOutsideHorizon(t *testing.T) {
	database := openTestDatabase(t)
	owner := seedUser(t, database, "owner", models.RoleOwner)
	property := seedProperty(t, database, owner.ID, "12 Elm Street")
	tenant := seedTenant(t, database, "renter")
	seedLease(t, database, property.ID, tenant.ID, models.LeaseStatusActive, time.Now().AddDate(1, 0, 0))

	farProperty := seedProperty(t, database, owner.ID, "34 Oak Road")
	seedLease(t, database, farProperty.ID, tenant.ID, models.LeaseStatusTerminated, time.Now().AddDate(0, 0, 5))

	notifier := NewLeaseExpiryNotifier(database)
	notifier.RunOnce(context.Background(), time.Now())

	var count int64
	require.NoError(t, database.Model(&models.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "far-future and non-active leases produce nothing")
}
