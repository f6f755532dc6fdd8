package db

import (
	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

type TenantRepository struct {
	database *gorm.DB
}

func NewTenantRepository(database *gorm.DB) *TenantRepository {
	return &TenantRepository{database: database}
}

func (repo *TenantRepository) FindByID(tenantID uint) (models.Tenant, error) {
	var tenant models.Tenant
	if err := repo.database.Preload("User").First(&tenant, tenantID).Error; err != nil {
		return models.Tenant{}, err
	}
	return tenant, nil
}

func (repo *TenantRepository) ListAll() ([]models.Tenant, error) {
	tenants := make([]models.Tenant, 0)
	if err := repo.database.Preload("User").Order("created_at DESC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (repo *TenantRepository) ExistsByUserID(userID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Tenant{}).
		Where("user_id = ?", userID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}
