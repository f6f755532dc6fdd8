package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/services"
)

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return handler.render(c, "login", fiber.Map{
		"Title": "Log in",
		"Next":  c.Query("next"),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	rememberMe := formBool(c, "remember_me")

	user, err := handler.authService.Authenticate(email, password)
	if err != nil {
		return failRedirect(c, "/auth/login", err)
	}

	if err := handler.setAuthCookie(c, user, rememberMe); err != nil {
		return failRedirect(c, "/auth/login", err)
	}

	next := sanitizeRedirectPath(c.FormValue("next"), "/dashboard")
	return redirectWithFlash(c, next, "Welcome back, "+user.Username+"!", flashCategorySuccess)
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return handler.render(c, "register", fiber.Map{
		"Title": "Register",
	})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := services.RegisterInput{
		Username:        c.FormValue("username"),
		Email:           c.FormValue("email"),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirm_password"),
		Phone:           c.FormValue("phone"),
		Role:            c.FormValue("role"),
	}

	if _, err := handler.authService.Register(input); err != nil {
		return failRedirect(c, "/auth/register", err)
	}
	return redirectWithFlash(c, "/auth/login", "Registration successful! Please log in.", flashCategorySuccess)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return redirectWithFlash(c, "/auth/login", "You have been logged out.", flashCategoryInfo)
}
