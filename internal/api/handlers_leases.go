package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/services"
)

func (handler *Handler) ListLeases(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	leases, err := handler.visibleLeases(user)
	if err != nil {
		return failRedirect(c, "/dashboard", err)
	}
	return handler.render(c, "leases_list", fiber.Map{
		"Title":  "Leases",
		"Leases": leases,
	})
}

func (handler *Handler) ShowAddLease(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	properties, err := handler.visibleProperties(user)
	if err != nil {
		return failRedirect(c, "/leases", err)
	}
	tenants, err := handler.repositories.Tenants.ListAll()
	if err != nil {
		return failRedirect(c, "/leases", err)
	}
	return handler.render(c, "lease_form", fiber.Map{
		"Title":      "Add Lease",
		"Action":     "/leases/add",
		"Properties": properties,
		"Tenants":    tenants,
	})
}

func (handler *Handler) AddLease(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	input, err := leaseInputFromForm(c)
	if err != nil {
		return failRedirect(c, "/leases/add", err)
	}

	if _, err := handler.leaseService.Create(user, input); err != nil {
		return failRedirect(c, "/leases/add", err)
	}
	return redirectWithFlash(c, "/leases", "Lease added successfully.", flashCategorySuccess)
}

func (handler *Handler) ShowEditLease(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	leaseID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/leases", err)
	}

	lease, err := handler.leaseService.Get(user, leaseID)
	if err != nil {
		return failRedirect(c, "/leases", err)
	}
	properties, err := handler.visibleProperties(user)
	if err != nil {
		return failRedirect(c, "/leases", err)
	}
	tenants, err := handler.repositories.Tenants.ListAll()
	if err != nil {
		return failRedirect(c, "/leases", err)
	}
	return handler.render(c, "lease_form", fiber.Map{
		"Title":      "Edit Lease",
		"Action":     "/leases/edit/" + c.Params("id"),
		"Lease":      lease,
		"Properties": properties,
		"Tenants":    tenants,
	})
}

func (handler *Handler) EditLease(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	leaseID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/leases", err)
	}

	input, err := leaseInputFromForm(c)
	if err != nil {
		return failRedirect(c, "/leases/edit/"+c.Params("id"), err)
	}

	if _, err := handler.leaseService.Update(user, leaseID, input); err != nil {
		return failRedirect(c, "/leases", err)
	}
	return redirectWithFlash(c, "/leases", "Lease updated successfully.", flashCategorySuccess)
}

func (handler *Handler) ViewLease(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	leaseID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/leases", err)
	}

	lease, err := handler.leaseService.Get(user, leaseID)
	if err != nil {
		return failRedirect(c, "/leases", err)
	}
	return handler.render(c, "lease_view", fiber.Map{
		"Title": "Lease Details",
		"Lease": lease,
	})
}

func (handler *Handler) DeleteLease(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	leaseID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/leases", err)
	}

	if err := handler.leaseService.Delete(user, leaseID); err != nil {
		return failRedirect(c, "/leases", err)
	}
	return redirectWithFlash(c, "/leases", "Lease deleted successfully.", flashCategorySuccess)
}

func leaseInputFromForm(c *fiber.Ctx) (services.LeaseInput, error) {
	propertyID, err := formUint(c, "property_id")
	if err != nil {
		return services.LeaseInput{}, err
	}
	tenantID, err := formUint(c, "tenant_id")
	if err != nil {
		return services.LeaseInput{}, err
	}
	startDate, err := formDate(c, "start_date")
	if err != nil {
		return services.LeaseInput{}, err
	}
	endDate, err := formDate(c, "end_date")
	if err != nil {
		return services.LeaseInput{}, err
	}
	monthlyRent, err := formFloat(c, "monthly_rent")
	if err != nil {
		return services.LeaseInput{}, err
	}
	securityDeposit, err := formOptionalFloat(c, "security_deposit")
	if err != nil {
		return services.LeaseInput{}, err
	}

	return services.LeaseInput{
		PropertyID:      propertyID,
		TenantID:        tenantID,
		StartDate:       startDate,
		EndDate:         endDate,
		MonthlyRent:     monthlyRent,
		SecurityDeposit: securityDeposit,
		TermsConditions: c.FormValue("terms_conditions"),
		Status:          c.FormValue("status"),
	}, nil
}
