package handler

import (
	"errors"

	"go-poultrigo/internal/middleware"
	"go-poultrigo/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService  service.AuthService
	secureCookie bool
}

func NewAuthHandler(authService service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

// LoginRequest represents the login form body
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterRequest represents the register form body
type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Login authenticates a user and sets the session cookie
// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Mohon isi semua kolom."})
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	middleware.SetSessionCookie(c, response.Token, h.secureCookie)

	return c.JSON(fiber.Map{
		"success":  true,
		"user":     response.User,
		"redirect": response.User.Role.HomePath(),
	})
}

// Register creates a guest account
// POST /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Mohon isi semua kolom."})
	}
	if len(req.Password) < 6 {
		return c.Status(400).JSON(fiber.Map{"error": "Password must be at least 6 characters"})
	}

	user, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create account"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "user": user})
}

// Logout clears the session cookie
// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return c.Redirect("/", fiber.StatusFound)
}
