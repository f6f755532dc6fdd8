package db

import (
	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

type LeaseRepository struct {
	database *gorm.DB
}

func NewLeaseRepository(database *gorm.DB) *LeaseRepository {
	return &LeaseRepository{database: database}
}

func (repo *LeaseRepository) FindByID(leaseID uint) (models.Lease, error) {
	var lease models.Lease
	if err := repo.database.
		Preload("Property").
		Preload("Tenant.User").
		First(&lease, leaseID).Error; err != nil {
		return models.Lease{}, err
	}
	return lease, nil
}

func (repo *LeaseRepository) ListAll() ([]models.Lease, error) {
	leases := make([]models.Lease, 0)
	if err := repo.database.
		Preload("Property").
		Preload("Tenant.User").
		Order("created_at DESC").
		Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

func (repo *LeaseRepository) ListByPropertyIDs(propertyIDs []uint) ([]models.Lease, error) {
	leases := make([]models.Lease, 0)
	if len(propertyIDs) == 0 {
		return leases, nil
	}
	if err := repo.database.
		Preload("Property").
		Preload("Tenant.User").
		Where("property_id IN ?", propertyIDs).
		Order("created_at DESC").
		Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

func (repo *LeaseRepository) ListActive() ([]models.Lease, error) {
	leases := make([]models.Lease, 0)
	if err := repo.database.
		Preload("Property").
		Preload("Tenant.User").
		Where("status = ?", models.LeaseStatusActive).
		Order("created_at DESC").
		Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

func (repo *LeaseRepository) ListActiveByPropertyIDs(propertyIDs []uint) ([]models.Lease, error) {
	leases := make([]models.Lease, 0)
	if len(propertyIDs) == 0 {
		return leases, nil
	}
	if err := repo.database.
		Preload("Property").
		Preload("Tenant.User").
		Where("property_id IN ? AND status = ?", propertyIDs, models.LeaseStatusActive).
		Order("created_at DESC").
		Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

func (repo *LeaseRepository) CountActiveByTenant(tenantID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Lease{}).
		Where("tenant_id = ? AND status = ?", tenantID, models.LeaseStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
