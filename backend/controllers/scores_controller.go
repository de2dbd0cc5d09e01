package controllers

import (
	"github.com/gofiber/fiber/v2"

	"project/backend/config"
	"project/backend/middleware"
	"project/backend/service"
	"project/backend/utils"
)

type ScoresController struct {
	Svc *service.ProgressionService
	Cfg *config.Config
}

func NewScoresController(svc *service.ProgressionService, cfg *config.Config) *ScoresController {
	return &ScoresController{Svc: svc, Cfg: cfg}
}

// RecordScore godoc
// @Summary Record a test result
// @Description Merges one raw test value into the ledger. Admins may pass a target name to edit another hunter's scores.
// @Tags scores
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Test name, value and optional target"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /scores [post]
func (sc *ScoresController) RecordScore(c *fiber.Ctx) error {
	acting := middleware.ProfileFrom(c)

	var input struct {
		Test   string  `json:"test"`
		Value  float64 `json:"value"`
		Target string  `json:"target"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	targetID := acting.ID
	if input.Target != "" && input.Target != acting.Name {
		// Permission first: a non-admin probing names must not learn from
		// the status code whether a profile exists.
		if !acting.IsAdmin {
			return utils.Forbidden(c, "Only admins can edit another hunter's scores")
		}
		target, err := sc.Svc.ProfileByName(input.Target)
		if err != nil {
			return serviceError(c, err)
		}
		targetID = target.ID
	}

	if err := sc.Svc.RecordScore(service.ActorFrom(acting), targetID, input.Test, input.Value); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"test":  input.Test,
		"value": input.Value,
	})
}
