package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/constants"
)

func guardedApp(role string, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			c.Locals("user_role", role)
			return c.Next()
		},
		guard,
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)
	return app
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int
	}{
		{"staff passes", constants.RoleStaff, fiber.StatusOK},
		{"management passes", constants.RoleManagement, fiber.StatusOK},
		{"admin passes", constants.RoleAdmin, fiber.StatusOK},
		{"student refused", constants.RoleStudent, fiber.StatusForbidden},
		{"parent refused", constants.RoleParent, fiber.StatusForbidden},
		{"missing role refused", "", fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := guardedApp(tt.role, RequireRoles(constants.StaffRoles...))
			resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("role %q: status = %d, want %d", tt.role, resp.StatusCode, tt.want)
			}
		})
	}
}

func TestRequireManagement(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int
	}{
		{"management passes", constants.RoleManagement, fiber.StatusOK},
		{"admin passes", constants.RoleAdmin, fiber.StatusOK},
		{"staff refused", constants.RoleStaff, fiber.StatusForbidden},
		{"student refused", constants.RoleStudent, fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := guardedApp(tt.role, RequireManagement())
			resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("role %q: status = %d, want %d", tt.role, resp.StatusCode, tt.want)
			}
		})
	}
}
