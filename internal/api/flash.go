package api

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	flashCategoryInfo    = "info"
	flashCategorySuccess = "success"
	flashCategoryError   = "error"
)

// FlashPayload is a one-shot status message carried across a redirect in a
// short-lived cookie and consumed by the next page render.
type FlashPayload struct {
	Message  string `json:"message,omitempty"`
	Category string `json:"category,omitempty"`
}

func setFlashCookie(c *fiber.Ctx, payload FlashPayload) {
	payload.Message = strings.TrimSpace(payload.Message)
	if payload.Message == "" {
		clearFlashCookie(c)
		return
	}
	if payload.Category == "" {
		payload.Category = flashCategoryInfo
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}
	encoded := base64.RawURLEncoding.EncodeToString(serialized)

	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

func popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := strings.TrimSpace(c.Cookies(flashCookieName))
	if raw == "" {
		return FlashPayload{}
	}
	clearFlashCookie(c)

	payload, err := decodeFlashValue(raw)
	if err != nil {
		return FlashPayload{}
	}
	return payload
}

func decodeFlashValue(raw string) (FlashPayload, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return FlashPayload{}, err
	}

	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}, err
	}
	payload.Message = strings.TrimSpace(payload.Message)
	return payload, nil
}

func clearFlashCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
