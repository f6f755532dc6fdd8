package api

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		setFlashCookie(c, FlashPayload{Message: "Please log in to access this page.", Category: flashCategoryInfo})
		target := "/auth/login"
		if c.Method() == fiber.MethodGet && c.Path() != "/" {
			target += "?next=" + url.QueryEscape(c.OriginalURL())
		}
		return c.Redirect(target, fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}
