package middleware

import (
	"github.com/gofiber/fiber/v2"

	"project/backend/config"
	"project/backend/models"
	"project/backend/service"
	"project/backend/utils"
)

// profileKey is the Locals slot holding the authenticated profile.
const profileKey = "profile"

// AuthMiddleware resolves the bearer token to a loaded profile and stashes it
// in the request context. Commands downstream only ever see the resolved
// actor, never the credential.
func AuthMiddleware(svc *service.ProgressionService, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := utils.ExtractProfileIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		profile, err := svc.ProfileByID(profileID)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		c.Locals(profileKey, profile)
		return c.Next()
	}
}

// AdminMiddleware gates admin routes on the profile's is_admin column.
// Must run after AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile := ProfileFrom(c)
		if profile == nil || !profile.IsAdmin {
			return utils.Forbidden(c, "Forbidden - Admin access required")
		}
		return c.Next()
	}
}

// ProfileFrom returns the profile stored by AuthMiddleware, or nil.
func ProfileFrom(c *fiber.Ctx) *models.Profile {
	profile, _ := c.Locals(profileKey).(*models.Profile)
	return profile
}
