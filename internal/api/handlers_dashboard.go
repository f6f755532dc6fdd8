package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	data, err := handler.dashboardService.Build(user, time.Now())
	if err != nil {
		return failRedirect(c, "/", err)
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title":             "Dashboard",
		"Stats":             data.Stats,
		"RecentPayments":    data.RecentPayments,
		"RecentMaintenance": data.RecentMaintenance,
		"ExpiringLeases":    data.ExpiringLeases,
	})
}
