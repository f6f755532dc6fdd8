package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/services"
)

const dateLayout = "2006-01-02"

// Numeric and date fields come in as form text; a field that does not parse
// fails the whole operation before anything is written.

func formFloat(c *fiber.Ctx, field string) (float64, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return 0, &services.ValidationError{Message: fmt.Sprintf("Field %s is required.", field)}
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &services.ValidationError{Message: fmt.Sprintf("Invalid value for %s.", field)}
	}
	return value, nil
}

func formOptionalFloat(c *fiber.Ctx, field string) (float64, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &services.ValidationError{Message: fmt.Sprintf("Invalid value for %s.", field)}
	}
	return value, nil
}

func formOptionalInt(c *fiber.Ctx, field string) (int, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &services.ValidationError{Message: fmt.Sprintf("Invalid value for %s.", field)}
	}
	return value, nil
}

func formUint(c *fiber.Ctx, field string) (uint, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &services.ValidationError{Message: fmt.Sprintf("Invalid value for %s.", field)}
	}
	return uint(value), nil
}

func formOptionalUint(c *fiber.Ctx, field string) (*uint, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, &services.ValidationError{Message: fmt.Sprintf("Invalid value for %s.", field)}
	}
	converted := uint(value)
	return &converted, nil
}

func formDate(c *fiber.Ctx, field string) (time.Time, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return time.Time{}, &services.ValidationError{Message: fmt.Sprintf("Field %s is required.", field)}
	}
	value, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, &services.ValidationError{Message: fmt.Sprintf("Invalid date for %s.", field)}
	}
	return value, nil
}

func formOptionalDate(c *fiber.Ctx, field string) (*time.Time, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return nil, nil
	}
	value, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, &services.ValidationError{Message: fmt.Sprintf("Invalid date for %s.", field)}
	}
	return &value, nil
}

func formBool(c *fiber.Ctx, field string) bool {
	raw := strings.ToLower(strings.TrimSpace(c.FormValue(field)))
	return raw == "on" || raw == "1" || raw == "true"
}

func paramID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &services.ValidationError{Message: "Invalid id."}
	}
	return uint(value), nil
}
