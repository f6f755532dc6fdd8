package models

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	MaintenanceStatusPending    = "pending"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusResolved   = "resolved"
)

type MaintenanceRequest struct {
	ID              uint   `gorm:"primaryKey"`
	PropertyID      uint   `gorm:"not null;index"`
	TenantID        uint   `gorm:"not null;index"`
	AssignedStaffID *uint
	RequestType     string `gorm:"not null"`
	Description     string `gorm:"not null"`
	Priority        string `gorm:"not null;default:medium"`
	Status          string `gorm:"not null;default:pending"`
	CreatedAt       time.Time `gorm:"not null"`
	ResolvedAt      *time.Time

	Property Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Tenant   Tenant   `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}
