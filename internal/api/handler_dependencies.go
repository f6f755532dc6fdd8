package api

import (
	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.accessPolicy = services.NewAccessPolicy(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.propertyService = services.NewPropertyService(database, handler.uploads, handler.accessPolicy)
	handler.tenantService = services.NewTenantService(database)
	handler.leaseService = services.NewLeaseService(database, handler.accessPolicy)
	handler.paymentService = services.NewPaymentService(database, handler.accessPolicy)
	handler.maintenanceService = services.NewMaintenanceService(database, handler.accessPolicy)
	handler.dashboardService = services.NewDashboardService(
		handler.repositories.Properties,
		handler.repositories.Leases,
		handler.repositories.Payments,
		handler.repositories.Maintenance,
	)
	return handler
}
