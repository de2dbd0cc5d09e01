package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"project/backend/service"
	"project/backend/utils"
)

// serviceError translates a typed progression failure into its HTTP status.
// The message is the error itself; no generic wrapping.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return utils.Error(c, fiber.StatusUnprocessableEntity, err)
	case errors.Is(err, service.ErrPermissionDenied):
		return utils.Error(c, fiber.StatusForbidden, err)
	case errors.Is(err, service.ErrNotFound):
		return utils.Error(c, fiber.StatusNotFound, err)
	case errors.Is(err, service.ErrConflict):
		return utils.Error(c, fiber.StatusConflict, err)
	case errors.Is(err, service.ErrLocked):
		return utils.Error(c, fiber.StatusLocked, err)
	case errors.Is(err, service.ErrInvalidTransition):
		return utils.Error(c, fiber.StatusConflict, err)
	default:
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}
}
