package auth

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/constants"
	helper "schoolhub_backend/internals/helpers"
)

// RequireRoles allows only the listed roles past. Must run after AuthMiddleware.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := allowed[helper.GetUserRole(c)]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStaff(c.Path()))
		}
		return c.Next()
	}
}

// RequireManagement narrows a staff group further for reference-data
// mutations (fee amounts, year setup).
func RequireManagement() fiber.Handler {
	allowed := make(map[string]struct{}, len(constants.ManagementRoles))
	for _, r := range constants.ManagementRoles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := allowed[helper.GetUserRole(c)]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorManagement(c.Path()))
		}
		return c.Next()
	}
}
