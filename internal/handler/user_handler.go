package handler

import (
	"errors"

	"go-poultrigo/internal/model"
	"go-poultrigo/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type UserRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// GetUsers lists all accounts, newest first
// GET /admin/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(users)
}

// CreateUser adds an account with an explicit role
// POST /admin/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Please fill in all fields"})
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role"})
	}

	user, err := h.userService.Create(req.Name, req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": user})
}

// UpdateUser edits an account; password only when provided
// PUT /admin/users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" || req.Email == "" || req.Role == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role"})
	}

	user, err := h.userService.Update(id, req.Name, req.Email, req.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrEmailTaken):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

// DeleteUser removes an account
// DELETE /admin/users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	if err := h.userService.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"success": true})
}
