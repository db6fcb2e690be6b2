package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/atik-theme/atik-assistant/internal/web/handler"
	"github.com/atik-theme/atik-assistant/internal/web/handler/login"
	"github.com/atik-theme/atik-assistant/internal/web/session"
)

// LocalsCurrentUser is the fiber.Locals key holding the logged in user.
const LocalsCurrentUser = "CurrentUser"

// Middleware is a Fiber middleware that checks for user authentication on
// admin routes. Public pages pass through; a logged in user is still made
// available to their templates.
func Middleware(c *fiber.Ctx) error {
	isLoginPage := IsLoginPage(c)
	isAdminPage := IsAdminPage(c)

	sessData := new(session.Data)
	if loginCookie := c.Cookies(session.CookieName); loginCookie != "" {
		_ = sessData.Read(loginCookie)
	}

	if sessData.User.ID > 0 {
		c.Locals(LocalsCurrentUser, sessData.User)

		if isLoginPage {
			return c.Redirect(handler.AdminPath)
		}

		return c.Next()
	}

	if isAdminPage {
		return c.Redirect(login.Path)
	}

	return c.Next()
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	return hasPathPrefix(c, login.Path)
}

// IsAdminPage checks if the current request is for the admin area.
func IsAdminPage(c *fiber.Ctx) bool {
	return hasPathPrefix(c, handler.AdminPath)
}

func hasPathPrefix(c *fiber.Ctx, prefix string) bool {
	path := strings.ToLower(c.Path())

	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
