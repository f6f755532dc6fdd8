package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/models"
	"github.com/velmariner/rentora/internal/services"
	"gorm.io/gorm"
)

// Tenant records are shared bookkeeping rather than per-owner data, so the
// tenant pages are not scoped by ownership.

func (handler *Handler) ListTenants(c *fiber.Ctx) error {
	tenants, err := handler.repositories.Tenants.ListAll()
	if err != nil {
		return failRedirect(c, "/dashboard", err)
	}
	return handler.render(c, "tenants_list", fiber.Map{
		"Title":   "Tenants",
		"Tenants": tenants,
	})
}

func (handler *Handler) ShowAddTenant(c *fiber.Ctx) error {
	return handler.render(c, "tenant_form", fiber.Map{
		"Title":  "Add Tenant",
		"Action": "/tenants/add",
	})
}

func (handler *Handler) AddTenant(c *fiber.Ctx) error {
	input, err := tenantInputFromForm(c)
	if err != nil {
		return failRedirect(c, "/tenants/add", err)
	}

	if _, err := handler.tenantService.Create(input); err != nil {
		return failRedirect(c, "/tenants/add", err)
	}
	return redirectWithFlash(c, "/tenants", "Tenant added successfully.", flashCategorySuccess)
}

func (handler *Handler) ShowEditTenant(c *fiber.Ctx) error {
	tenantID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/tenants", err)
	}

	tenant, err := handler.findTenant(tenantID)
	if err != nil {
		return failRedirect(c, "/tenants", err)
	}
	return handler.render(c, "tenant_form", fiber.Map{
		"Title":  "Edit Tenant",
		"Action": "/tenants/edit/" + c.Params("id"),
		"Tenant": tenant,
	})
}

func (handler *Handler) EditTenant(c *fiber.Ctx) error {
	tenantID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/tenants", err)
	}

	input, err := tenantInputFromForm(c)
	if err != nil {
		return failRedirect(c, "/tenants/edit/"+c.Params("id"), err)
	}

	if _, err := handler.tenantService.Update(tenantID, input); err != nil {
		return failRedirect(c, "/tenants", err)
	}
	return redirectWithFlash(c, "/tenants", "Tenant updated successfully.", flashCategorySuccess)
}

func (handler *Handler) ViewTenant(c *fiber.Ctx) error {
	tenantID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/tenants", err)
	}

	tenant, err := handler.findTenant(tenantID)
	if err != nil {
		return failRedirect(c, "/tenants", err)
	}
	return handler.render(c, "tenant_view", fiber.Map{
		"Title":  tenant.User.Username,
		"Tenant": tenant,
	})
}

func (handler *Handler) DeleteTenant(c *fiber.Ctx) error {
	tenantID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/tenants", err)
	}

	if err := handler.tenantService.Delete(tenantID); err != nil {
		return failRedirect(c, "/tenants", err)
	}
	return redirectWithFlash(c, "/tenants", "Tenant deleted successfully.", flashCategorySuccess)
}

func (handler *Handler) findTenant(tenantID uint) (models.Tenant, error) {
	tenant, err := handler.repositories.Tenants.FindByID(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Tenant{}, &services.NotFoundError{Entity: "tenant"}
		}
		return models.Tenant{}, err
	}
	return tenant, nil
}

func tenantInputFromForm(c *fiber.Ctx) (services.TenantInput, error) {
	moveInDate, err := formOptionalDate(c, "move_in_date")
	if err != nil {
		return services.TenantInput{}, err
	}

	return services.TenantInput{
		Username:         c.FormValue("username"),
		Email:            c.FormValue("email"),
		Phone:            c.FormValue("phone"),
		Password:         c.FormValue("password"),
		NationalID:       c.FormValue("national_id"),
		EmergencyContact: c.FormValue("emergency_contact"),
		Occupation:       c.FormValue("occupation"),
		MoveInDate:       moveInDate,
	}, nil
}
