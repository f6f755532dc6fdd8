package services

import (
	"time"

	"github.com/velmariner/rentora/internal/models"
)

// expiryHorizonDays is the dashboard window for "expiring soon" leases.
const expiryHorizonDays = 30

const recentActivityLimit = 5

type DashboardPropertySource interface {
	ListAll() ([]models.Property, error)
	ListByOwner(ownerID uint) ([]models.Property, error)
}

type DashboardLeaseSource interface {
	ListAll() ([]models.Lease, error)
	ListByPropertyIDs(propertyIDs []uint) ([]models.Lease, error)
}

type DashboardPaymentSource interface {
	ListAll() ([]models.Payment, error)
	ListByPropertyIDs(propertyIDs []uint) ([]models.Payment, error)
}

type DashboardMaintenanceSource interface {
	ListAll() ([]models.MaintenanceRequest, error)
	ListByPropertyIDs(propertyIDs []uint) ([]models.MaintenanceRequest, error)
}

// DashboardService aggregates the acting user's visible records in memory.
// Fine at this scale; nothing here is built for large record sets.
type DashboardService struct {
	properties  DashboardPropertySource
	leases      DashboardLeaseSource
	payments    DashboardPaymentSource
	maintenance DashboardMaintenanceSource
}

func NewDashboardService(
	properties DashboardPropertySource,
	leases DashboardLeaseSource,
	payments DashboardPaymentSource,
	maintenance DashboardMaintenanceSource,
) *DashboardService {
	return &DashboardService{
		properties:  properties,
		leases:      leases,
		payments:    payments,
		maintenance: maintenance,
	}
}

type DashboardStats struct {
	TotalProperties     int
	AvailableProperties int
	OccupiedProperties  int
	ActiveLeases        int
	TotalRent           float64
	PendingPayments     int
	PendingMaintenance  int
}

type DashboardData struct {
	Stats             DashboardStats
	RecentPayments    []models.Payment
	RecentMaintenance []models.MaintenanceRequest
	ExpiringLeases    []models.Lease
}

func (service *DashboardService) Build(user models.User, now time.Time) (DashboardData, error) {
	properties, leases, payments, maintenance, err := service.visibleRecords(user)
	if err != nil {
		return DashboardData{}, err
	}

	stats := DashboardStats{TotalProperties: len(properties)}
	for _, property := range properties {
		switch property.AvailabilityStatus {
		case models.AvailabilityAvailable:
			stats.AvailableProperties++
		case models.AvailabilityOccupied:
			stats.OccupiedProperties++
		}
	}
	for _, lease := range leases {
		if lease.Status == models.LeaseStatusActive {
			stats.ActiveLeases++
			stats.TotalRent += lease.MonthlyRent
		}
	}
	for _, payment := range payments {
		if payment.Status == models.PaymentStatusPending {
			stats.PendingPayments++
		}
	}
	for _, request := range maintenance {
		if request.Status == models.MaintenanceStatusPending {
			stats.PendingMaintenance++
		}
	}

	today := truncateToDay(now)
	horizon := today.AddDate(0, 0, expiryHorizonDays)
	expiring := make([]models.Lease, 0)
	for _, lease := range leases {
		endDay := truncateToDay(lease.EndDate)
		if !endDay.Before(today) && !endDay.After(horizon) {
			expiring = append(expiring, lease)
		}
	}

	return DashboardData{
		Stats:             stats,
		RecentPayments:    payments[:min(recentActivityLimit, len(payments))],
		RecentMaintenance: maintenance[:min(recentActivityLimit, len(maintenance))],
		ExpiringLeases:    expiring,
	}, nil
}

// visibleRecords loads the full record set the user may see: everything for
// admins, otherwise the user's properties and everything under them.
func (service *DashboardService) visibleRecords(user models.User) ([]models.Property, []models.Lease, []models.Payment, []models.MaintenanceRequest, error) {
	if user.Role == models.RoleAdmin {
		properties, err := service.properties.ListAll()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		leases, err := service.leases.ListAll()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		payments, err := service.payments.ListAll()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		maintenance, err := service.maintenance.ListAll()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		return properties, leases, payments, maintenance, nil
	}

	properties, err := service.properties.ListByOwner(user.ID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	propertyIDs := make([]uint, 0, len(properties))
	for _, property := range properties {
		propertyIDs = append(propertyIDs, property.ID)
	}

	leases, err := service.leases.ListByPropertyIDs(propertyIDs)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	payments, err := service.payments.ListByPropertyIDs(propertyIDs)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	maintenance, err := service.maintenance.ListByPropertyIDs(propertyIDs)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return properties, leases, payments, maintenance, nil
}

func truncateToDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}
