package handler

import (
	"go-poultrigo/internal/middleware"
	"go-poultrigo/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers untuk ambil user info dari context (set by SessionGuard)

func getUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	raw := c.Locals(middleware.LocalUserID)
	if raw == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func getUserName(c *fiber.Ctx) string {
	if name, ok := c.Locals(middleware.LocalUserName).(string); ok {
		return name
	}
	return ""
}

func getUserRole(c *fiber.Ctx) model.Role {
	if role, ok := c.Locals(middleware.LocalUserRole).(model.Role); ok {
		return role
	}
	return ""
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
