package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListNotifications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	notifications, err := handler.repositories.Notifications.ListByUser(user.ID)
	if err != nil {
		return failRedirect(c, "/dashboard", err)
	}

	return handler.render(c, "notifications", fiber.Map{
		"Title":         "Notifications",
		"Notifications": notifications,
	})
}

// MarkNotificationRead only touches rows owned by the acting user; a foreign
// id silently affects nothing.
func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	notificationID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/notifications", err)
	}

	if _, err := handler.repositories.Notifications.MarkRead(notificationID, user.ID); err != nil {
		return failRedirect(c, "/notifications", err)
	}
	return c.Redirect("/notifications", fiber.StatusSeeOther)
}
