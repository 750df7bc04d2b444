package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrMissingUserID = errors.New("user id missing from request context")

// ParseUUIDParam reads a path param as uuid.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// ParseUUIDQuery reads an optional uuid query param. Returns uuid.Nil when absent.
func ParseUUIDQuery(c *fiber.Ctx, name string) (uuid.UUID, error) {
	v := c.Query(name)
	if v == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(v)
}

// GetUserUUID returns the authenticated user's id stored by the auth middleware.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	if raw == "" {
		return uuid.Nil, ErrMissingUserID
	}
	return uuid.Parse(raw)
}

// GetUserRole returns the role claim stored by the auth middleware.
func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	return role
}
