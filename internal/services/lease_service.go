package services

import (
	"strings"
	"time"

	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

type LeaseService struct {
	database *gorm.DB
	leases   *db.LeaseRepository
	access   *AccessPolicy
}

func NewLeaseService(database *gorm.DB, access *AccessPolicy) *LeaseService {
	return &LeaseService{database: database, leases: db.NewLeaseRepository(database), access: access}
}

type LeaseInput struct {
	PropertyID      uint
	TenantID        uint
	StartDate       time.Time
	EndDate         time.Time
	MonthlyRent     float64
	SecurityDeposit float64
	TermsConditions string
	Status          string
}

// Create writes the lease and, when it starts out active, flips the property
// to occupied in the same transaction.
func (service *LeaseService) Create(user models.User, input LeaseInput) (models.Lease, error) {
	if err := service.access.AuthorizeProperty(user, input.PropertyID); err != nil {
		return models.Lease{}, err
	}

	lease := models.Lease{
		PropertyID:      input.PropertyID,
		TenantID:        input.TenantID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		MonthlyRent:     input.MonthlyRent,
		SecurityDeposit: input.SecurityDeposit,
		TermsConditions: input.TermsConditions,
		Status:          normalizeLeaseStatus(input.Status),
		CreatedAt:       time.Now(),
	}

	err := service.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&lease).Error; err != nil {
			return err
		}
		if lease.Status == models.LeaseStatusActive {
			return setPropertyAvailability(tx, lease.PropertyID, models.AvailabilityOccupied)
		}
		return nil
	})
	if err != nil {
		return models.Lease{}, err
	}
	return lease, nil
}

// Update reassigns every lease field. When the status changes, the property's
// availability is recomputed from the new status: active means occupied,
// expired or terminated means available.
func (service *LeaseService) Update(user models.User, leaseID uint, input LeaseInput) (models.Lease, error) {
	if err := service.access.AuthorizeLease(user, leaseID); err != nil {
		return models.Lease{}, err
	}

	var lease models.Lease
	if err := service.database.First(&lease, leaseID).Error; err != nil {
		return models.Lease{}, notFoundOr(err, "lease")
	}

	if input.PropertyID != lease.PropertyID {
		if err := service.access.AuthorizeProperty(user, input.PropertyID); err != nil {
			return models.Lease{}, err
		}
	}

	previousStatus := lease.Status
	lease.PropertyID = input.PropertyID
	lease.TenantID = input.TenantID
	lease.StartDate = input.StartDate
	lease.EndDate = input.EndDate
	lease.MonthlyRent = input.MonthlyRent
	lease.SecurityDeposit = input.SecurityDeposit
	lease.TermsConditions = input.TermsConditions
	lease.Status = normalizeLeaseStatus(input.Status)

	err := service.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&lease).Error; err != nil {
			return err
		}
		if previousStatus == lease.Status {
			return nil
		}
		switch lease.Status {
		case models.LeaseStatusActive:
			return setPropertyAvailability(tx, lease.PropertyID, models.AvailabilityOccupied)
		case models.LeaseStatusExpired, models.LeaseStatusTerminated:
			return setPropertyAvailability(tx, lease.PropertyID, models.AvailabilityAvailable)
		}
		return nil
	})
	if err != nil {
		return models.Lease{}, err
	}
	return lease, nil
}

// Delete reverts the property to available when the removed lease was the
// active one; payments cascade with the lease.
func (service *LeaseService) Delete(user models.User, leaseID uint) error {
	if err := service.access.AuthorizeLease(user, leaseID); err != nil {
		return err
	}

	var lease models.Lease
	if err := service.database.First(&lease, leaseID).Error; err != nil {
		return notFoundOr(err, "lease")
	}

	return service.database.Transaction(func(tx *gorm.DB) error {
		if lease.Status == models.LeaseStatusActive {
			if err := setPropertyAvailability(tx, lease.PropertyID, models.AvailabilityAvailable); err != nil {
				return err
			}
		}
		return tx.Delete(&models.Lease{}, leaseID).Error
	})
}

func (service *LeaseService) Get(user models.User, leaseID uint) (models.Lease, error) {
	if err := service.access.AuthorizeLease(user, leaseID); err != nil {
		return models.Lease{}, err
	}

	lease, err := service.leases.FindByID(leaseID)
	if err != nil {
		return models.Lease{}, notFoundOr(err, "lease")
	}
	return lease, nil
}

func setPropertyAvailability(tx *gorm.DB, propertyID uint, status string) error {
	return tx.Model(&models.Property{}).
		Where("id = ?", propertyID).
		Update("availability_status", status).Error
}

func normalizeLeaseStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case models.LeaseStatusExpired:
		return models.LeaseStatusExpired
	case models.LeaseStatusTerminated:
		return models.LeaseStatusTerminated
	default:
		return models.LeaseStatusActive
	}
}
