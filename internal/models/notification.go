package models

import "time"

const (
	NotificationTypeLeaseExpiry = "lease_expiry"
	NotificationTypeMaintenance = "maintenance"
)

type Notification struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"not null;index"`
	NotificationType string `gorm:"not null"`
	Message          string `gorm:"not null"`
	IsRead           bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"not null"`
}
