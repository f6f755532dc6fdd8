package api

import (
	"github.com/velmariner/rentora/internal/models"
)

// List pages scope their rows by role: admins see every record, owners see
// records hanging off their own properties.

func (handler *Handler) visibleProperties(user models.User) ([]models.Property, error) {
	if user.Role == models.RoleAdmin {
		return handler.repositories.Properties.ListAll()
	}
	return handler.repositories.Properties.ListByOwner(user.ID)
}

func (handler *Handler) visibleLeases(user models.User) ([]models.Lease, error) {
	if user.Role == models.RoleAdmin {
		return handler.repositories.Leases.ListAll()
	}
	propertyIDs, err := handler.repositories.Properties.IDsByOwner(user.ID)
	if err != nil {
		return nil, err
	}
	return handler.repositories.Leases.ListByPropertyIDs(propertyIDs)
}

func (handler *Handler) visibleActiveLeases(user models.User) ([]models.Lease, error) {
	if user.Role == models.RoleAdmin {
		return handler.repositories.Leases.ListActive()
	}
	propertyIDs, err := handler.repositories.Properties.IDsByOwner(user.ID)
	if err != nil {
		return nil, err
	}
	return handler.repositories.Leases.ListActiveByPropertyIDs(propertyIDs)
}

func (handler *Handler) visiblePayments(user models.User) ([]models.Payment, error) {
	if user.Role == models.RoleAdmin {
		return handler.repositories.Payments.ListAll()
	}
	propertyIDs, err := handler.repositories.Properties.IDsByOwner(user.ID)
	if err != nil {
		return nil, err
	}
	return handler.repositories.Payments.ListByPropertyIDs(propertyIDs)
}

func (handler *Handler) visibleMaintenanceRequests(user models.User) ([]models.MaintenanceRequest, error) {
	if user.Role == models.RoleAdmin {
		return handler.repositories.Maintenance.ListAll()
	}
	propertyIDs, err := handler.repositories.Properties.IDsByOwner(user.ID)
	if err != nil {
		return nil, err
	}
	return handler.repositories.Maintenance.ListByPropertyIDs(propertyIDs)
}
