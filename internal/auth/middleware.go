package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/atik-theme/atik-assistant/internal/web/session"
)

// LocalsActor is the fiber.Locals key holding the *Actor of the request.
const LocalsActor = "actor"

func sessionUserID(c *fiber.Ctx) uint64 {
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return 0
	}

	sessionData := new(session.Data)
	if err := sessionData.Read(sessionID); err != nil {
		return 0
	}

	return sessionData.User.ID
}

// RequirePermission creates Fiber middleware that requires a specific permission.
func RequirePermission(authService *Service, permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := sessionUserID(c)
		if userID == 0 {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		hasPermission, err := authService.HasPermission(userID, permission)
		if err != nil {
			log.Error().Err(err).Uint64("user_id", userID).Str("permission", permission).
				Msg("Failed to check permission")

			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}

		if !hasPermission {
			log.Warn().Uint64("user_id", userID).Str("permission", permission).
				Msg("User lacks required permission")

			return c.Status(fiber.StatusForbidden).SendString("Forbidden: You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// AddActorToLocals is a Fiber middleware that stores the actor of a logged
// in user and its permissions in fiber.Locals for handlers and templates.
func AddActorToLocals(authService *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := sessionUserID(c)
		if userID == 0 {
			return c.Next()
		}

		actor, err := authService.Actor(userID)
		if err != nil {
			log.Error().Err(err).Uint64("user_id", userID).
				Msg("Failed to get user permissions")

			return c.Next()
		}

		c.Locals(LocalsActor, actor)
		c.Locals("permissions", actor.Permissions)

		return c.Next()
	}
}

// ActorFromContext returns the actor stored by AddActorToLocals. It returns
// nil for anonymous requests; a nil *Actor can nothing.
func ActorFromContext(c *fiber.Ctx) *Actor {
	actor, _ := c.Locals(LocalsActor).(*Actor)
	return actor
}
