package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/velmariner/rentora/internal/models"
)

func TestDashboardScopedToOwner(t *testing.T) {
	app, database := newTestApp(t)
	owner := createTestUser(t, database, "owner", "owner@example.com", "sup3rsecret", models.RoleOwner)
	other := createTestUser(t, database, "other", "other@example.com", "sup3rsecret", models.RoleOwner)
	ownProperty := createTestProperty(t, database, owner.ID, "12 Elm Street")
	createTestProperty(t, database, other.ID, "77 Hidden Lane")
	tenant := createTestTenant(t, database, "renter", "renter@example.com")
	createTestLease(t, database, ownProperty.ID, tenant.ID, models.LeaseStatusActive, time.Now().AddDate(0, 0, 10))
	ownerCookie := loginAndExtractAuthCookie(t, app, "owner@example.com", "sup3rsecret")

	body := getPage(t, app, ownerCookie, "/dashboard", http.StatusOK)

	// The lease ends within the 30-day horizon, so the expiring list carries
	// the owner's property but never the other owner's.
	if !containsAll(body, "12 Elm Street") {
		t.Fatal("owner's expiring lease missing from dashboard")
	}
	if containsAll(body, "77 Hidden Lane") {
		t.Fatal("foreign property leaked into dashboard")
	}
}

func TestDashboardAdminSeesEverything(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "admin", "admin@rental.com", "admin123", models.RoleAdmin)
	ownerA := createTestUser(t, database, "ownerA", "a@example.com", "sup3rsecret", models.RoleOwner)
	ownerB := createTestUser(t, database, "ownerB", "b@example.com", "sup3rsecret", models.RoleOwner)
	propertyA := createTestProperty(t, database, ownerA.ID, "12 Elm Street")
	propertyB := createTestProperty(t, database, ownerB.ID, "77 Hidden Lane")
	tenant := createTestTenant(t, database, "renter", "renter@example.com")
	createTestLease(t, database, propertyA.ID, tenant.ID, models.LeaseStatusActive, time.Now().AddDate(0, 0, 5))
	createTestLease(t, database, propertyB.ID, tenant.ID, models.LeaseStatusActive, time.Now().AddDate(0, 0, 15))
	adminCookie := loginAndExtractAuthCookie(t, app, "admin@rental.com", "admin123")

	body := getPage(t, app, adminCookie, "/dashboard", http.StatusOK)
	if !containsAll(body, "12 Elm Street", "77 Hidden Lane") {
		t.Fatal("admin dashboard should include every owner's records")
	}
}
