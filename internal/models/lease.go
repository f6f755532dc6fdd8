package models

import "time"

const (
	LeaseStatusActive     = "active"
	LeaseStatusExpired    = "expired"
	LeaseStatusTerminated = "terminated"
)

type Lease struct {
	ID              uint      `gorm:"primaryKey"`
	PropertyID      uint      `gorm:"not null;index"`
	TenantID        uint      `gorm:"not null;index"`
	StartDate       time.Time `gorm:"not null"`
	EndDate         time.Time `gorm:"not null"`
	MonthlyRent     float64   `gorm:"not null"`
	SecurityDeposit float64
	TermsConditions string
	Status          string    `gorm:"not null;default:active"`
	CreatedAt       time.Time `gorm:"not null"`

	Property Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Tenant   Tenant   `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}
