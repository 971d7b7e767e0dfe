package middleware

import (
	"strings"
	"time"

	"go-poultrigo/internal/model"
	"go-poultrigo/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "session"

// Context keys set by the guard for downstream handlers.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
	LocalUserName  = "user_name"
	LocalUserRole  = "user_role"
)

var publicPrefixes = []string{"/login", "/register", "/api/public"}

func isPublicPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// SessionGuard gates every request on the session cookie. Public paths pass
// through; everything else needs a valid token whose role matches the
// requested path prefix. Any verification failure is treated as no session.
func SessionGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		token := c.Cookies(CookieName)

		if isPublicPath(path) {
			// Already logged in and visiting the login page: go home instead
			if token != "" && strings.HasPrefix(path, "/login") {
				if claims, err := jwt.ValidateToken(token); err == nil {
					return c.Redirect(claims.Role.HomePath(), fiber.StatusFound)
				}
				// Invalid token: let them stay on the login page
			}
			return c.Next()
		}

		if token == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			ClearSessionCookie(c)
			return c.Redirect("/login", fiber.StatusFound)
		}

		// Each role is confined to its own path prefix. A mismatch redirects
		// to login, same as no session; there is no separate forbidden page.
		for _, role := range model.AllRoles {
			if strings.HasPrefix(path, role.HomePath()) && claims.Role != role {
				return c.Redirect("/login", fiber.StatusFound)
			}
		}

		c.Locals(LocalUserID, claims.UserID.String())
		c.Locals(LocalUserEmail, claims.Email)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalUserRole, claims.Role)

		return c.Next()
	}
}

// SetSessionCookie writes the session cookie after a successful login.
func SetSessionCookie(c *fiber.Ctx, token string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(jwt.SessionTTL / time.Second),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie (logout / invalid token).
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
