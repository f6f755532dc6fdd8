package services

import (
	"errors"
	"strings"
	"time"

	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

// DefaultTenantPassword is assigned when a tenant account is created from the
// tenants form without an explicit password.
const DefaultTenantPassword = "changeme123"

type TenantService struct {
	database *gorm.DB
}

func NewTenantService(database *gorm.DB) *TenantService {
	return &TenantService{database: database}
}

type TenantInput struct {
	Username         string
	Email            string
	Phone            string
	Password         string
	NationalID       string
	EmergencyContact string
	Occupation       string
	MoveInDate       *time.Time
}

// Create reuses an existing account with the submitted email as the tenant's
// identity; a fresh account with role=tenant is created otherwise. Both the
// user and the tenant profile land in one transaction.
func (service *TenantService) Create(input TenantInput) (models.Tenant, error) {
	email := NormalizeEmail(input.Email)
	if email == "" || strings.TrimSpace(input.NationalID) == "" {
		return models.Tenant{}, &ValidationError{Message: "Email and national ID are required."}
	}

	var tenant models.Tenant
	err := service.database.Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Where("lower(trim(email)) = ?", email).First(&user).Error
		switch {
		case err == nil:
			taken, err := db.NewTenantRepository(tx).ExistsByUserID(user.ID)
			if err != nil {
				return err
			}
			if taken {
				return &ValidationError{Message: "This user is already registered as a tenant."}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			password := input.Password
			if password == "" {
				password = DefaultTenantPassword
			}
			passwordHash, hashErr := HashPassword(password)
			if hashErr != nil {
				return hashErr
			}
			user = models.User{
				Username:     strings.TrimSpace(input.Username),
				Email:        email,
				PasswordHash: passwordHash,
				Role:         models.RoleTenant,
				Phone:        strings.TrimSpace(input.Phone),
				IsActive:     true,
				CreatedAt:    time.Now(),
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		default:
			return err
		}

		tenant = models.Tenant{
			UserID:           user.ID,
			NationalID:       strings.TrimSpace(input.NationalID),
			EmergencyContact: strings.TrimSpace(input.EmergencyContact),
			Occupation:       strings.TrimSpace(input.Occupation),
			MoveInDate:       input.MoveInDate,
			CreatedAt:        time.Now(),
		}
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}
		tenant.User = user
		return nil
	})
	if err != nil {
		return models.Tenant{}, err
	}
	return tenant, nil
}

// Update edits the linked account's contact fields and the tenant profile as
// one unit.
func (service *TenantService) Update(tenantID uint, input TenantInput) (models.Tenant, error) {
	var tenant models.Tenant
	err := service.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").First(&tenant, tenantID).Error; err != nil {
			return notFoundOr(err, "tenant")
		}

		tenant.User.Username = strings.TrimSpace(input.Username)
		tenant.User.Email = NormalizeEmail(input.Email)
		tenant.User.Phone = strings.TrimSpace(input.Phone)
		if err := tx.Save(&tenant.User).Error; err != nil {
			return err
		}

		tenant.NationalID = strings.TrimSpace(input.NationalID)
		tenant.EmergencyContact = strings.TrimSpace(input.EmergencyContact)
		tenant.Occupation = strings.TrimSpace(input.Occupation)
		if input.MoveInDate != nil {
			tenant.MoveInDate = input.MoveInDate
		}
		return tx.Save(&tenant).Error
	})
	if err != nil {
		return models.Tenant{}, err
	}
	return tenant, nil
}

// Delete refuses while the tenant holds any active lease; otherwise the
// profile goes away and its leases and payments cascade.
func (service *TenantService) Delete(tenantID uint) error {
	return service.database.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.First(&tenant, tenantID).Error; err != nil {
			return notFoundOr(err, "tenant")
		}

		activeLeases, err := db.NewLeaseRepository(tx).CountActiveByTenant(tenantID)
		if err != nil {
			return err
		}
		if activeLeases > 0 {
			return &ValidationError{Message: "Cannot delete tenant with active leases."}
		}

		return tx.Delete(&models.Tenant{}, tenantID).Error
	})
}
