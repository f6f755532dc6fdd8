package api

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/velmariner/rentora/internal/models"
)

func TestCreateActiveLeaseMarksPropertyOccupied(t *testing.T) {
	app, database := newTestApp(t)
	owner := createTestUser(t, database, "owner", "owner@example.com", "sup3rsecret", models.RoleOwner)
	property := createTestProperty(t, database, owner.ID, "12 Elm Street")
	tenant := createTestTenant(t, database, "renter", "renter@example.com")
	ownerCookie := loginAndExtractAuthCookie(t, app, "owner@example.com", "sup3rsecret")

	form := url.Values{
		"property_id":  {fmt.Sprint(property.ID)},
		"tenant_id":    {fmt.Sprint(tenant.ID)},
		"start_date":   {"2026-01-01"},
		"end_date":     {"2027-01-01"},
		"monthly_rent": {"1200"},
		"status":       {"active"},
	}
	response := postForm(t, app, ownerCookie, "/leases/add", form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}

	var reloaded models.Property
	if err := database.First(&reloaded, property.ID).Error; err != nil {
		t.Fatalf("reload property: %v", err)
	}
	if reloaded.AvailabilityStatus != models.AvailabilityOccupied {
		t.Fatalf("expected occupied, got %s", reloaded.AvailabilityStatus)
	}
}

func TestTerminatingLeaseFreesProperty(t *testing.T) {
	app, database := newTestApp(t)
	owner := createTestUser(t, database, "owner", "owner@example.com", "sup3rsecret", models.RoleOwner)
	property := createTestProperty(t, database, owner.ID, "12 Elm Street")
	tenant := createTestTenant(t, database, "renter", "renter@example.com")
	lease := createTestLease(t, database, property.ID, tenant.ID, models.LeaseStatusActive, time.Now().AddDate(1, 0, 0))
	if err := database.Model(&models.Property{}).Where("id = ?", property.ID).
		Update("availability_status", models.AvailabilityOccupied).Error; err != nil {
		t.Fatalf("mark occupied: %v", err)
	}
	ownerCookie := loginAndExtractAuthCookie(t, app, "owner@example.com", "sup3rsecret")

	form := url.Values{
		"property_id":  {fmt.Sprint(property.ID)},
		"tenant_id":    {fmt.Sprint(tenant.ID)},
		"start_date":   {"2026-01-01"},
		"end_date":     {"2027-01-01"},
		"monthly_rent": {"1200"},
		"status":       {"terminated"},
	}
	response := postForm(t, app, ownerCookie, fmt.Sprintf("/leases/edit/%d", lease.ID), form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}

	var reloaded models.Property
	if err := database.First(&reloaded, property.ID).Error; err != nil {
		t.Fatalf("reload property: %v", err)
	}
	if reloaded.AvailabilityStatus != models.AvailabilityAvailable {
		t.Fatalf("expected available, got %s", reloaded.AvailabilityStatus)
	}
}

func TestDeletingActiveLeaseFreesProperty(t *testing.T) {
	app, database := newTestApp(t)
	owner := createTestUser(t, database, "owner", "owner@example.com", "sup3rsecret", models.RoleOwner)
	property := createTestProperty(t, database, owner.ID, "12 Elm Street")
	tenant := createTestTenant(t, database, "renter", "renter@example.com")
	lease := createTestLease(t, database, property.ID, tenant.ID, models.LeaseStatusActive, time.Now().AddDate(1, 0, 0))
	if err := database.Model(&models.Property{}).Where("id = ?", property.ID).
		Update("availability_status", models.AvailabilityOccupied).Error; err != nil {
		t.Fatalf("mark occupied: %v", err)
	}
	ownerCookie := loginAndExtractAuthCookie(t, app, "owner@example.com", "sup3rsecret")

	response := postForm(t, app, ownerCookie, fmt.Sprintf("/leases/delete/%d", lease.ID), url.Values{})
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}

	var reloaded models.Property
	if err := database.First(&reloaded, property.ID).Error; err != nil {
		t.Fatalf("reload property: %v", err)
	}
	if reloaded.AvailabilityStatus != models.AvailabilityAvailable {
		t.Fatalf("expected available, got %s", reloaded.AvailabilityStatus)
	}

	var leaseCount int64
	if err := database.Model(&models.Lease{}).Where("id = ?", lease.ID).Count(&leaseCount).Error; err != nil {
		t.Fatalf("count leases: %v", err)
	}
	if leaseCount != 0 {
		t.Fatal("lease row should be gone")
	}
}

func TestDeletingExpiredLeaseKeepsAvailability(t *testing.T) {
	app, database := newTestApp(t)
	owner := createTestUser(t, database, "owner", "owner@example.com", "sup3rsecret", models.RoleOwner)
	property := createTestProperty(t, database, owner.ID, "12 Elm Street")
	tenant := createTestTenant(t, database, "renter", "renter@example.com")
	lease := createTestLease(t, database, property.ID, tenant.ID, models.LeaseStatusExpired, time.Now().AddDate(0, -1, 0))
	if err := database.Model(&models.Property{}).Where("id = ?", property.ID).
		Update("availability_status", models.AvailabilityMaintenance).Error; err != nil {
		t.Fatalf("mark maintenance: %v", err)
	}
	ownerCookie := loginAndExtractAuthCookie(t, app, "owner@example.com", "sup3rsecret")

	response := postForm(t, app, ownerCookie, fmt.Sprintf("/leases/delete/%d", lease.ID), url.Values{})
	defer response.Body.Close()

	var reloaded models.Property
	if err := database.First(&reloaded, property.ID).Error; err != nil {
		t.Fatalf("reload property: %v", err)
	}
	if reloaded.AvailabilityStatus != models.AvailabilityMaintenance {
		t.Fatalf("deleting a non-active lease must not touch availability, got %s", reloaded.AvailabilityStatus)
	}
}
