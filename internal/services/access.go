package services

import (
	"errors"
	"fmt"

	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

// AccessPolicy is the single ownership rule behind every permission check in
// the application: admins may act on anything, any other user only on
// resources that resolve to a property they own. Each entity type has an
// explicit resolver from resource to responsible property owner, so all
// checks trace back to Allows.
type AccessPolicy struct {
	database *gorm.DB
}

func NewAccessPolicy(database *gorm.DB) *AccessPolicy {
	return &AccessPolicy{database: database}
}

func (policy *AccessPolicy) Allows(user models.User, owningUserID uint) bool {
	return user.Role == models.RoleAdmin || user.ID == owningUserID
}

func (policy *AccessPolicy) AuthorizeProperty(user models.User, propertyID uint) error {
	return policy.authorize(policy.database, user, propertyID, "property")
}

func (policy *AccessPolicy) AuthorizeLease(user models.User, leaseID uint) error {
	propertyID, err := leasePropertyID(policy.database, leaseID)
	if err != nil {
		return err
	}
	return policy.authorize(policy.database, user, propertyID, "lease")
}

func (policy *AccessPolicy) AuthorizePayment(user models.User, paymentID uint) error {
	var payment models.Payment
	if err := policy.database.Select("id", "lease_id").First(&payment, paymentID).Error; err != nil {
		return notFoundOr(err, "payment")
	}
	propertyID, err := leasePropertyID(policy.database, payment.LeaseID)
	if err != nil {
		return err
	}
	return policy.authorize(policy.database, user, propertyID, "payment")
}

func (policy *AccessPolicy) AuthorizeMaintenanceRequest(user models.User, requestID uint) error {
	var request models.MaintenanceRequest
	if err := policy.database.Select("id", "property_id").First(&request, requestID).Error; err != nil {
		return notFoundOr(err, "maintenance request")
	}
	return policy.authorize(policy.database, user, request.PropertyID, "maintenance request")
}

func (policy *AccessPolicy) authorize(tx *gorm.DB, user models.User, propertyID uint, entity string) error {
	if user.Role == models.RoleAdmin {
		return nil
	}

	ownerID, err := propertyOwnerID(tx, propertyID)
	if err != nil {
		return err
	}
	if !policy.Allows(user, ownerID) {
		return &PermissionError{Message: fmt.Sprintf("You do not have permission to access this %s.", entity)}
	}
	return nil
}

func propertyOwnerID(tx *gorm.DB, propertyID uint) (uint, error) {
	var property models.Property
	if err := tx.Select("id", "owner_id").First(&property, propertyID).Error; err != nil {
		return 0, notFoundOr(err, "property")
	}
	return property.OwnerID, nil
}

func leasePropertyID(tx *gorm.DB, leaseID uint) (uint, error) {
	var lease models.Lease
	if err := tx.Select("id", "property_id").First(&lease, leaseID).Error; err != nil {
		return 0, notFoundOr(err, "lease")
	}
	return lease.PropertyID, nil
}

func notFoundOr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity}
	}
	return err
}
