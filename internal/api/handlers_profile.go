package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/services"
)

func (handler *Handler) ShowProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return handler.render(c, "profile", fiber.Map{
		"Title": "My Profile",
		"User":  user,
	})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	input := services.ProfileInput{
		Username:        c.FormValue("username"),
		Email:           c.FormValue("email"),
		Phone:           c.FormValue("phone"),
		CurrentPassword: c.FormValue("current_password"),
		NewPassword:     c.FormValue("new_password"),
	}

	updated, err := handler.authService.UpdateProfile(user.ID, input)
	if err != nil {
		return failRedirect(c, "/profile", err)
	}

	// The auth cookie carries the role claim, so refresh it with the saved
	// account.
	if err := handler.setAuthCookie(c, updated, false); err != nil {
		return failRedirect(c, "/profile", err)
	}
	return redirectWithFlash(c, "/profile", "Profile updated successfully.", flashCategorySuccess)
}
