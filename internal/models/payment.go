package models

import "time"

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
)

type Payment struct {
	ID            uint    `gorm:"primaryKey"`
	LeaseID       uint    `gorm:"not null;index"`
	Amount        float64 `gorm:"not null"`
	DueDate       *time.Time
	PaidDate      *time.Time
	PaymentMethod string
	Status        string    `gorm:"not null;default:pending"`
	ReceiptPath   string
	CreatedAt     time.Time `gorm:"not null"`

	Lease Lease `gorm:"foreignKey:LeaseID;constraint:OnDelete:CASCADE"`
}
