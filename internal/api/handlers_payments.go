package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/services"
)

func (handler *Handler) ListPayments(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	payments, err := handler.visiblePayments(user)
	if err != nil {
		return failRedirect(c, "/dashboard", err)
	}
	return handler.render(c, "payments_list", fiber.Map{
		"Title":    "Payments",
		"Payments": payments,
	})
}

// ShowAddPayment offers active leases only; editing keeps the full visible
// set so an existing payment on a closed lease stays editable.
func (handler *Handler) ShowAddPayment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	leases, err := handler.visibleActiveLeases(user)
	if err != nil {
		return failRedirect(c, "/payments", err)
	}
	return handler.render(c, "payment_form", fiber.Map{
		"Title":  "Add Payment",
		"Action": "/payments/add",
		"Leases": leases,
	})
}

func (handler *Handler) AddPayment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	input, err := paymentInputFromForm(c)
	if err != nil {
		return failRedirect(c, "/payments/add", err)
	}

	if _, err := handler.paymentService.Create(user, input); err != nil {
		return failRedirect(c, "/payments/add", err)
	}
	return redirectWithFlash(c, "/payments", "Payment recorded successfully.", flashCategorySuccess)
}

func (handler *Handler) ShowEditPayment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	paymentID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/payments", err)
	}

	payment, err := handler.paymentService.Get(user, paymentID)
	if err != nil {
		return failRedirect(c, "/payments", err)
	}
	leases, err := handler.visibleLeases(user)
	if err != nil {
		return failRedirect(c, "/payments", err)
	}
	return handler.render(c, "payment_form", fiber.Map{
		"Title":   "Edit Payment",
		"Action":  "/payments/edit/" + c.Params("id"),
		"Payment": payment,
		"Leases":  leases,
	})
}

func (handler *Handler) EditPayment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	paymentID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/payments", err)
	}

	input, err := paymentInputFromForm(c)
	if err != nil {
		return failRedirect(c, "/payments/edit/"+c.Params("id"), err)
	}

	if _, err := handler.paymentService.Update(user, paymentID, input); err != nil {
		return failRedirect(c, "/payments", err)
	}
	return redirectWithFlash(c, "/payments", "Payment updated successfully.", flashCategorySuccess)
}

func (handler *Handler) ViewPayment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	paymentID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/payments", err)
	}

	payment, err := handler.paymentService.Get(user, paymentID)
	if err != nil {
		return failRedirect(c, "/payments", err)
	}
	return handler.render(c, "payment_view", fiber.Map{
		"Title":   "Payment Details",
		"Payment": payment,
	})
}

func (handler *Handler) DeletePayment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	paymentID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/payments", err)
	}

	if err := handler.paymentService.Delete(user, paymentID); err != nil {
		return failRedirect(c, "/payments", err)
	}
	return redirectWithFlash(c, "/payments", "Payment deleted successfully.", flashCategorySuccess)
}

func paymentInputFromForm(c *fiber.Ctx) (services.PaymentInput, error) {
	leaseID, err := formUint(c, "lease_id")
	if err != nil {
		return services.PaymentInput{}, err
	}
	amount, err := formFloat(c, "amount")
	if err != nil {
		return services.PaymentInput{}, err
	}
	dueDate, err := formOptionalDate(c, "due_date")
	if err != nil {
		return services.PaymentInput{}, err
	}
	paidDate, err := formOptionalDate(c, "paid_date")
	if err != nil {
		return services.PaymentInput{}, err
	}

	return services.PaymentInput{
		LeaseID:       leaseID,
		Amount:        amount,
		DueDate:       dueDate,
		PaidDate:      paidDate,
		PaymentMethod: c.FormValue("payment_method"),
		Status:        c.FormValue("status"),
	}, nil
}
