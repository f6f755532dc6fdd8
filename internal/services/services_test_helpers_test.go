package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "rentora-services-test.db"))
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func seedUser(t *testing.T, database *gorm.DB, username string, role string) models.User {
	t.Helper()

	passwordHash, err := HashPassword("sup3rsecret")
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, database.Create(&user).Error)
	return user
}

func seedProperty(t *testing.T, database *gorm.DB, ownerID uint, address string) models.Property {
	t.Helper()

	property := models.Property{
		OwnerID:            ownerID,
		PropertyType:       "apartment",
		Address:            address,
		City:               "Springfield",
		State:              "IL",
		RentAmount:         1200,
		AvailabilityStatus: models.AvailabilityAvailable,
		CreatedAt:          time.Now(),
	}
	require.NoError(t, database.Create(&property).Error)
	return property
}

func seedTenant(t *testing.T, database *gorm.DB, username string) models.Tenant {
	t.Helper()

	user := seedUser(t, database, username, models.RoleTenant)
	tenant := models.Tenant{
		UserID:     user.ID,
		NationalID: "ID-" + username,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, database.Create(&tenant).Error)
	tenant.User = user
	return tenant
}

func seedLease(t *testing.T, database *gorm.DB, propertyID uint, tenantID uint, status string, endDate time.Time) models.Lease {
	t.Helper()

	lease := models.Lease{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		StartDate:   endDate.AddDate(-1, 0, 0),
		EndDate:     endDate,
		MonthlyRent: 1200,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, database.Create(&lease).Error)
	return lease
}
