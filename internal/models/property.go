package models

import "time"

const (
	AvailabilityAvailable   = "available"
	AvailabilityOccupied    = "occupied"
	AvailabilityMaintenance = "maintenance"
)

type Property struct {
	ID                 uint    `gorm:"primaryKey"`
	OwnerID            uint    `gorm:"not null;index"`
	PropertyType       string  `gorm:"not null"`
	Address            string  `gorm:"not null"`
	City               string  `gorm:"not null"`
	State              string  `gorm:"not null"`
	RentAmount         float64 `gorm:"not null"`
	AvailabilityStatus string  `gorm:"not null;default:available"`
	Description        string
	Bedrooms           int
	Bathrooms          int
	AreaSqft           float64
	ImagePath          string
	CreatedAt          time.Time `gorm:"not null"`

	Owner User `gorm:"foreignKey:OwnerID"`
}
