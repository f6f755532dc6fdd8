package api

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/services"
	"github.com/velmariner/rentora/internal/storage"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool
	uploads      *storage.UploadStore
	templates    map[string]*template.Template

	repositories       *db.Repositories
	authService        *services.AuthService
	accessPolicy       *services.AccessPolicy
	propertyService    *services.PropertyService
	tenantService      *services.TenantService
	leaseService       *services.LeaseService
	paymentService     *services.PaymentService
	maintenanceService *services.MaintenanceService
	dashboardService   *services.DashboardService
}

func NewHandler(database *gorm.DB, secret string, templateDir string, uploads *storage.UploadStore, cookieSecure bool) (*Handler, error) {
	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"formatDatePtr": func(value *time.Time, layout string) string {
			if value == nil || value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"formatMoney": func(value float64) string {
			return fmt.Sprintf("%.2f", value)
		},
		"derefUint": func(value *uint) uint {
			if value == nil {
				return 0
			}
			return *value
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"index",
		"login",
		"register",
		"dashboard",
		"profile",
		"notifications",
		"properties_list",
		"property_form",
		"property_view",
		"tenants_list",
		"tenant_form",
		"tenant_view",
		"leases_list",
		"lease_form",
		"lease_view",
		"payments_list",
		"payment_form",
		"payment_view",
		"maintenance_list",
		"maintenance_form",
		"maintenance_view",
	}
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		uploads:      uploads,
		templates:    templates,
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{
		"CSRFToken": csrfToken(c),
		"Path":      c.Path(),
	}

	if flash := popFlashCookie(c); flash.Message != "" {
		payload["Flash"] = flash
	}
	if user, ok := currentUser(c); ok {
		payload["CurrentUser"] = user
		if unread, err := handler.repositories.Notifications.CountUnreadByUser(user.ID); err == nil {
			payload["UnreadNotifications"] = unread
		}
	}

	for key, value := range data {
		payload[key] = value
	}
	return payload
}
