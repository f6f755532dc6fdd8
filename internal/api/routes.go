package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.Index)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/profile", handler.AuthRequired, handler.ShowProfile)
	app.Post("/profile/update", handler.AuthRequired, handler.UpdateProfile)
	app.Get("/notifications", handler.AuthRequired, handler.ListNotifications)
	app.Post("/notifications/read/:id", handler.AuthRequired, handler.MarkNotificationRead)

	auth := app.Group("/auth")
	auth.Get("/login", handler.ShowLoginPage)
	auth.Post("/login", handler.Login)
	auth.Get("/register", handler.ShowRegisterPage)
	auth.Post("/register", handler.Register)
	auth.Get("/logout", handler.AuthRequired, handler.Logout)

	properties := app.Group("/properties", handler.AuthRequired)
	properties.Get("/", handler.ListProperties)
	properties.Get("/add", handler.ShowAddProperty)
	properties.Post("/add", handler.AddProperty)
	properties.Get("/edit/:id", handler.ShowEditProperty)
	properties.Post("/edit/:id", handler.EditProperty)
	properties.Get("/view/:id", handler.ViewProperty)
	properties.Post("/delete/:id", handler.DeleteProperty)

	tenants := app.Group("/tenants", handler.AuthRequired)
	tenants.Get("/", handler.ListTenants)
	tenants.Get("/add", handler.ShowAddTenant)
	tenants.Post("/add", handler.AddTenant)
	tenants.Get("/edit/:id", handler.ShowEditTenant)
	tenants.Post("/edit/:id", handler.EditTenant)
	tenants.Get("/view/:id", handler.ViewTenant)
	tenants.Post("/delete/:id", handler.DeleteTenant)

	leases := app.Group("/leases", handler.AuthRequired)
	leases.Get("/", handler.ListLeases)
	leases.Get("/add", handler.ShowAddLease)
	leases.Post("/add", handler.AddLease)
	leases.Get("/edit/:id", handler.ShowEditLease)
	leases.Post("/edit/:id", handler.EditLease)
	leases.Get("/view/:id", handler.ViewLease)
	leases.Post("/delete/:id", handler.DeleteLease)

	payments := app.Group("/payments", handler.AuthRequired)
	payments.Get("/", handler.ListPayments)
	payments.Get("/add", handler.ShowAddPayment)
	payments.Post("/add", handler.AddPayment)
	payments.Get("/edit/:id", handler.ShowEditPayment)
	payments.Post("/edit/:id", handler.EditPayment)
	payments.Get("/view/:id", handler.ViewPayment)
	payments.Post("/delete/:id", handler.DeletePayment)

	maintenance := app.Group("/maintenance", handler.AuthRequired)
	maintenance.Get("/", handler.ListMaintenanceRequests)
	maintenance.Get("/add", handler.ShowAddMaintenanceRequest)
	maintenance.Post("/add", handler.AddMaintenanceRequest)
	maintenance.Get("/edit/:id", handler.ShowEditMaintenanceRequest)
	maintenance.Post("/edit/:id", handler.EditMaintenanceRequest)
	maintenance.Get("/view/:id", handler.ViewMaintenanceRequest)
	maintenance.Post("/delete/:id", handler.DeleteMaintenanceRequest)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
