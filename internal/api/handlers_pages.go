package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/models"
)

// Index is the public landing page; logged-in visitors go straight to the
// dashboard.
func (handler *Handler) Index(c *fiber.Ctx) error {
	if user, err := handler.authenticateRequest(c); err == nil {
		c.Locals(contextUserKey, user)
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	totalProperties, err := handler.repositories.Properties.CountAll()
	if err != nil {
		return failRedirect(c, "/auth/login", err)
	}
	availableProperties, err := handler.repositories.Properties.CountByAvailability(models.AvailabilityAvailable)
	if err != nil {
		return failRedirect(c, "/auth/login", err)
	}

	return handler.render(c, "index", fiber.Map{
		"Title":               "Welcome",
		"TotalProperties":     totalProperties,
		"AvailableProperties": availableProperties,
	})
}
