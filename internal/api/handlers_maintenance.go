package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/models"
	"github.com/velmariner/rentora/internal/services"
)

func (handler *Handler) ListMaintenanceRequests(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	requests, err := handler.visibleMaintenanceRequests(user)
	if err != nil {
		return failRedirect(c, "/dashboard", err)
	}
	return handler.render(c, "maintenance_list", fiber.Map{
		"Title":    "Maintenance Requests",
		"Requests": requests,
	})
}

func (handler *Handler) ShowAddMaintenanceRequest(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	formData, err := handler.maintenanceFormData(user)
	if err != nil {
		return failRedirect(c, "/maintenance", err)
	}
	formData["Title"] = "Add Maintenance Request"
	formData["Action"] = "/maintenance/add"
	return handler.render(c, "maintenance_form", formData)
}

func (handler *Handler) AddMaintenanceRequest(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	input, err := maintenanceInputFromForm(c)
	if err != nil {
		return failRedirect(c, "/maintenance/add", err)
	}

	if _, err := handler.maintenanceService.Create(user, input); err != nil {
		return failRedirect(c, "/maintenance/add", err)
	}
	return redirectWithFlash(c, "/maintenance", "Maintenance request added successfully.", flashCategorySuccess)
}

func (handler *Handler) ShowEditMaintenanceRequest(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	requestID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/maintenance", err)
	}

	request, err := handler.maintenanceService.Get(user, requestID)
	if err != nil {
		return failRedirect(c, "/maintenance", err)
	}
	formData, err := handler.maintenanceFormData(user)
	if err != nil {
		return failRedirect(c, "/maintenance", err)
	}
	formData["Title"] = "Edit Maintenance Request"
	formData["Action"] = "/maintenance/edit/" + c.Params("id")
	formData["Request"] = request
	return handler.render(c, "maintenance_form", formData)
}

func (handler *Handler) EditMaintenanceRequest(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	requestID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/maintenance", err)
	}

	input, err := maintenanceInputFromForm(c)
	if err != nil {
		return failRedirect(c, "/maintenance/edit/"+c.Params("id"), err)
	}

	if _, err := handler.maintenanceService.Update(user, requestID, input); err != nil {
		return failRedirect(c, "/maintenance", err)
	}
	return redirectWithFlash(c, "/maintenance", "Maintenance request updated successfully.", flashCategorySuccess)
}

func (handler *Handler) ViewMaintenanceRequest(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	requestID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/maintenance", err)
	}

	request, err := handler.maintenanceService.Get(user, requestID)
	if err != nil {
		return failRedirect(c, "/maintenance", err)
	}
	return handler.render(c, "maintenance_view", fiber.Map{
		"Title":   "Maintenance Request",
		"Request": request,
	})
}

func (handler *Handler) DeleteMaintenanceRequest(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	requestID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/maintenance", err)
	}

	if err := handler.maintenanceService.Delete(user, requestID); err != nil {
		return failRedirect(c, "/maintenance", err)
	}
	return redirectWithFlash(c, "/maintenance", "Maintenance request deleted successfully.", flashCategorySuccess)
}

func (handler *Handler) maintenanceFormData(user models.User) (fiber.Map, error) {
	properties, err := handler.visibleProperties(user)
	if err != nil {
		return nil, err
	}
	tenants, err := handler.repositories.Tenants.ListAll()
	if err != nil {
		return nil, err
	}
	staff, err := handler.repositories.Users.ListStaff()
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"Properties": properties,
		"Tenants":    tenants,
		"Staff":      staff,
	}, nil
}

func maintenanceInputFromForm(c *fiber.Ctx) (services.MaintenanceInput, error) {
	propertyID, err := formUint(c, "property_id")
	if err != nil {
		return services.MaintenanceInput{}, err
	}
	tenantID, err := formUint(c, "tenant_id")
	if err != nil {
		return services.MaintenanceInput{}, err
	}
	assignedStaffID, err := formOptionalUint(c, "assigned_staff_id")
	if err != nil {
		return services.MaintenanceInput{}, err
	}

	return services.MaintenanceInput{
		PropertyID:      propertyID,
		TenantID:        tenantID,
		AssignedStaffID: assignedStaffID,
		RequestType:     c.FormValue("request_type"),
		Description:     c.FormValue("description"),
		Priority:        c.FormValue("priority"),
		Status:          c.FormValue("status"),
	}, nil
}
