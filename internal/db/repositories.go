package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Properties    *PropertyRepository
	Tenants       *TenantRepository
	Leases        *LeaseRepository
	Payments      *PaymentRepository
	Maintenance   *MaintenanceRepository
	Notifications *NotificationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Properties:    NewPropertyRepository(database),
		Tenants:       NewTenantRepository(database),
		Leases:        NewLeaseRepository(database),
		Payments:      NewPaymentRepository(database),
		Maintenance:   NewMaintenanceRepository(database),
		Notifications: NewNotificationRepository(database),
	}
}
