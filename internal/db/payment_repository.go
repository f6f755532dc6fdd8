package db

import (
	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	database *gorm.DB
}

func NewPaymentRepository(database *gorm.DB) *PaymentRepository {
	return &PaymentRepository{database: database}
}

func (repo *PaymentRepository) FindByID(paymentID uint) (models.Payment, error) {
	var payment models.Payment
	if err := repo.database.
		Preload("Lease.Property").
		Preload("Lease.Tenant.User").
		First(&payment, paymentID).Error; err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

func (repo *PaymentRepository) ListAll() ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	if err := repo.database.
		Preload("Lease.Property").
		Preload("Lease.Tenant.User").
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (repo *PaymentRepository) ListByPropertyIDs(propertyIDs []uint) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	if len(propertyIDs) == 0 {
		return payments, nil
	}
	if err := repo.database.
		Preload("Lease.Property").
		Preload("Lease.Tenant.User").
		Joins("JOIN leases ON leases.id = payments.lease_id").
		Where("leases.property_id IN ?", propertyIDs).
		Order("payments.created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
