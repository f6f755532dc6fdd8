package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func postFormlessGet(t *testing.T, app *fiber.App, authCookie string, path string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return response
}

func assertPermissionRedirect(t *testing.T, response *http.Response, expectedLocation string) {
	t.Helper()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != expectedLocation {
		t.Fatalf("expected redirect to %s, got %s", expectedLocation, location)
	}
	message := flashMessageFromResponse(t, response)
	if !strings.Contains(message, "You do not have permission") {
		t.Fatalf("expected permission denial flash, got %q", message)
	}
}

func containsAll(body string, fragments ...string) bool {
	for _, fragment := range fragments {
		if !strings.Contains(body, fragment) {
			return false
		}
	}
	return true
}
