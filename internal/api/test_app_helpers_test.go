package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/models"
	"github.com/velmariner/rentora/internal/services"
	"github.com/velmariner/rentora/internal/storage"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	internalDir := filepath.Dir(apiDir)
	templatesDir := filepath.Join(internalDir, "templates")
	databasePath := filepath.Join(t.TempDir(), "rentora-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	uploads, err := storage.NewUploadStore(t.TempDir(), []string{"png", "jpg", "jpeg", "pdf"})
	if err != nil {
		t.Fatalf("init upload store: %v", err)
	}

	handler, err := NewHandler(database, "test-secret-key", templatesDir, uploads, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func createTestUser(t *testing.T, database *gorm.DB, username string, email string, password string, role string) models.User {
	t.Helper()

	passwordHash, err := services.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Username:     username,
		Email:        services.NormalizeEmail(email),
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestProperty(t *testing.T, database *gorm.DB, ownerID uint, address string) models.Property {
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
	if err := database.Create(&property).Error; err != nil {
		t.Fatalf("create property: %v", err)
	}
	return property
}

func createTestTenant(t *testing.T, database *gorm.DB, username string, email string) models.Tenant {
	t.Helper()

	user := createTestUser(t, database, username, email, "changeme123", models.RoleTenant)
	tenant := models.Tenant{
		UserID:     user.ID,
		NationalID: "ID-" + username,
		CreatedAt:  time.Now(),
	}
	if err := database.Create(&tenant).Error; err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	tenant.User = user
	return tenant
}

func createTestLease(t *testing.T, database *gorm.DB, propertyID uint, tenantID uint, status string, endDate time.Time) models.Lease {
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
	if err := database.Create(&lease).Error; err != nil {
		t.Fatalf("create lease: %v", err)
	}
	return lease
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	form := url.Values{
		"email":    {email},
		"password": {password},
	}
	request := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login status 303, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == "rentora_auth" && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func getPage(t *testing.T, app *fiber.App, authCookie string, path string, expectedStatus int) string {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != expectedStatus {
		t.Fatalf("GET %s expected status %d, got %d", path, expectedStatus, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("GET %s read body failed: %v", path, err)
	}
	return string(body)
}

func postForm(t *testing.T, app *fiber.App, authCookie string, path string, form url.Values) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func flashMessageFromResponse(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == "rentora_flash" && cookie.Value != "" {
			payload, err := decodeFlashValue(cookie.Value)
			if err != nil {
				t.Fatalf("decode flash cookie: %v", err)
			}
			return payload.Message
		}
	}
	return ""
}

func redirectLocation(t *testing.T, response *http.Response) string {
	t.Helper()
	return response.Header.Get("Location")
}
