package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velmariner/rentora/internal/models"
)

func TestAllows(t *testing.T) {
	policy := NewAccessPolicy(nil)

	admin := models.User{ID: 1, Role: models.RoleAdmin}
	owner := models.User{ID: 2, Role: models.RoleOwner}

	assert.True(t, policy.Allows(admin, 99), "admin bypasses ownership")
	assert.True(t, policy.Allows(owner, 2), "owner may act on own resources")
	assert.False(t, policy.Allows(owner, 3), "owner may not act on foreign resources")
}

func TestAuthorizeResolvesThroughEntityChain(t *testing.T) {
	database := openTestDatabase(t)
	policy := NewAccessPolicy(database)

	owner := seedUser(t, database, "owner", models.RoleOwner)
	intruder := seedUser(t, database, "intruder", models.RoleOwner)
	admin := seedUser(t, database, "admin", models.RoleAdmin)
	property := seedProperty(t, database, owner.ID, "12 Elm Street")
	tenant := seedTenant(t, database, "renter")
	lease := seedLease(t, database, property.ID, tenant.ID, models.LeaseStatusActive, time.Now().AddDate(1, 0, 0))

	payment := models.Payment{LeaseID: lease.ID, Amount: 1200, Status: models.PaymentStatusPending, CreatedAt: time.Now()}
	require.NoError(t, database.Create(&payment).Error)

	request := models.MaintenanceRequest{
		PropertyID:  property.ID,
		TenantID:    tenant.ID,
		RequestType: "plumbing",
		Description: "Leaking faucet",
		Priority:    models.PriorityMedium,
		Status:      models.MaintenanceStatusPending,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, database.Create(&request).Error)

	assert.NoError(t, policy.AuthorizeProperty(owner, property.ID))
	assert.NoError(t, policy.AuthorizeLease(owner, lease.ID))
	assert.NoError(t, policy.AuthorizePayment(owner, payment.ID))
	assert.NoError(t, policy.AuthorizeMaintenanceRequest(owner, request.ID))

	assert.True(t, IsPermission(policy.AuthorizeProperty(intruder, property.ID)))
	assert.True(t, IsPermission(policy.AuthorizeLease(intruder, lease.ID)))
	assert.True(t, IsPermission(policy.AuthorizePayment(intruder, payment.ID)))
	assert.True(t, IsPermission(policy.AuthorizeMaintenanceRequest(intruder, request.ID)))

	assert.NoError(t, policy.AuthorizeProperty(admin, property.ID))
	assert.NoError(t, policy.AuthorizePayment(admin, payment.ID))
}

func TestAuthorizeMissingEntityIsNotFound(t *testing.T) {
	database := openTestDatabase(t)
	policy := NewAccessPolicy(database)
	owner := seedUser(t, database, "owner", models.RoleOwner)

	assert.True(t, IsNotFound(policy.AuthorizeProperty(owner, 12345)))
	assert.True(t, IsNotFound(policy.AuthorizeLease(owner, 12345)))
	assert.True(t, IsNotFound(policy.AuthorizePayment(owner, 12345)))
	assert.True(t, IsNotFound(policy.AuthorizeMaintenanceRequest(owner, 12345)))
}
