package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/models"
)

const (
	authCookieName  = "rentora_auth"
	flashCookieName = "rentora_flash"
	contextUserKey  = "current_user"
)

func currentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(contextUserKey).(models.User)
	return user, ok
}
