package models

import "time"

type Tenant struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"not null;uniqueIndex"`
	NationalID       string `gorm:"not null"`
	EmergencyContact string
	Occupation       string
	MoveInDate       *time.Time
	CreatedAt        time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID"`
}
