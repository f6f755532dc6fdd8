package db

import (
	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

type PropertyRepository struct {
	database *gorm.DB
}

func NewPropertyRepository(database *gorm.DB) *PropertyRepository {
	return &PropertyRepository{database: database}
}

func (repo *PropertyRepository) FindByID(propertyID uint) (models.Property, error) {
	var property models.Property
	if err := repo.database.Preload("Owner").First(&property, propertyID).Error; err != nil {
		return models.Property{}, err
	}
	return property, nil
}

func (repo *PropertyRepository) ListAll() ([]models.Property, error) {
	properties := make([]models.Property, 0)
	if err := repo.database.Preload("Owner").Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (repo *PropertyRepository) ListByOwner(ownerID uint) ([]models.Property, error) {
	properties := make([]models.Property, 0)
	if err := repo.database.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (repo *PropertyRepository) IDsByOwner(ownerID uint) ([]uint, error) {
	ids := make([]uint, 0)
	if err := repo.database.Model(&models.Property{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *PropertyRepository) CountAll() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Property{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PropertyRepository) CountByAvailability(status string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Property{}).
		Where("availability_status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
