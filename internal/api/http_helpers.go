package api

import (
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/services"
)

func redirectWithFlash(c *fiber.Ctx, path string, message string, category string) error {
	setFlashCookie(c, FlashPayload{Message: message, Category: category})
	return c.Redirect(path, fiber.StatusSeeOther)
}

// failRedirect is the single translation point from the service error
// taxonomy to a user-facing flash message.
func failRedirect(c *fiber.Ctx, path string, err error) error {
	return redirectWithFlash(c, path, flashMessageForError(err), flashCategoryError)
}

func flashMessageForError(err error) string {
	switch {
	case services.IsValidation(err), services.IsPermission(err):
		return err.Error()
	case services.IsNotFound(err):
		return capitalizeFirst(err.Error()) + "."
	default:
		return "Something went wrong: " + err.Error()
	}
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}

// sanitizeRedirectPath keeps post-login redirects on this origin.
func sanitizeRedirectPath(raw string, fallback string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return fallback
	}
	if strings.HasPrefix(candidate, "//") || !strings.HasPrefix(candidate, "/") {
		return fallback
	}
	return candidate
}

func capitalizeFirst(value string) string {
	for index, letter := range value {
		return string(unicode.ToUpper(letter)) + value[index+len(string(letter)):]
	}
	return value
}
