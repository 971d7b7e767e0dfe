package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-poultrigo/internal/model"
	"go-poultrigo/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedApp() *fiber.App {
	app := fiber.New()
	app.Use(SessionGuard())

	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("home") })
	app.Get("/login", func(c *fiber.Ctx) error { return c.SendString("login") })
	app.Get("/api/public/products", func(c *fiber.Ctx) error { return c.SendString("products") })
	app.Get("/guest/cart", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals(LocalUserID),
			"role":    c.Locals(LocalUserRole),
		})
	})
	app.Get("/admin/users", func(c *fiber.Ctx) error { return c.SendString("users") })
	return app
}

func requestWithCookie(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	}
	return req
}

func TestGuardAllowsPublicPaths(t *testing.T) {
	app := guardedApp()

	for _, path := range []string{"/", "/login", "/api/public/products"} {
		resp, err := app.Test(requestWithCookie(path, ""))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "path %s", path)
	}
}

func TestGuardRedirectsWithoutCookie(t *testing.T) {
	app := guardedApp()

	resp, err := app.Test(requestWithCookie("/guest/cart", ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGuardRedirectsInvalidCookie(t *testing.T) {
	app := guardedApp()

	resp, err := app.Test(requestWithCookie("/admin/users", "tampered.token.value"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// The bad cookie gets cleared on the way out
	assert.Contains(t, resp.Header.Get("Set-Cookie"), CookieName+"=")
}

func TestGuardConfinesRoleToOwnPrefix(t *testing.T) {
	app := guardedApp()

	guestToken, err := jwt.GenerateToken(uuid.New(), "g@example.com", "Guest", model.RoleGuest)
	require.NoError(t, err)

	resp, err := app.Test(requestWithCookie("/admin/users", guestToken))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGuardPassesMatchingRole(t *testing.T) {
	app := guardedApp()

	userID := uuid.New()
	token, err := jwt.GenerateToken(userID, "g@example.com", "Guest", model.RoleGuest)
	require.NoError(t, err)

	resp, err := app.Test(requestWithCookie("/guest/cart", token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGuardRedirectsLoggedInFromLogin(t *testing.T) {
	app := guardedApp()

	token, err := jwt.GenerateToken(uuid.New(), "a@example.com", "Admin", model.RoleAdmin)
	require.NoError(t, err)

	resp, err := app.Test(requestWithCookie("/login", token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))
}

func TestGuardLetsBadTokenStayOnLogin(t *testing.T) {
	app := guardedApp()

	resp, err := app.Test(requestWithCookie("/login", "rusak"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
