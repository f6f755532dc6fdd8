package db

import (
	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	database *gorm.DB
}

func NewMaintenanceRepository(database *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{database: database}
}

func (repo *MaintenanceRepository) FindByID(requestID uint) (models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	if err := repo.database.
		Preload("Property").
		Preload("Tenant.User").
		First(&request, requestID).Error; err != nil {
		return models.MaintenanceRequest{}, err
	}
	return request, nil
}

func (repo *MaintenanceRepository) ListAll() ([]models.MaintenanceRequest, error) {
	requests := make([]models.MaintenanceRequest, 0)
	if err := repo.database.
		Preload("Property").
		Preload("Tenant.User").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (repo *MaintenanceRepository) ListByPropertyIDs(propertyIDs []uint) ([]models.MaintenanceRequest, error) {
	requests := make([]models.MaintenanceRequest, 0)
	if len(propertyIDs) == 0 {
		return requests, nil
	}
	if err := repo.database.
		Preload("Property").
		Preload("Tenant.User").
		Where("property_id IN ?", propertyIDs).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
