package controllers

import (
	"github.com/gofiber/fiber/v2"

	"project/backend/config"
	"project/backend/service"
	"project/backend/utils"
)

type LeaderboardController struct {
	Svc *service.ProgressionService
	Cfg *config.Config
}

func NewLeaderboardController(svc *service.ProgressionService, cfg *config.Config) *LeaderboardController {
	return &LeaderboardController{Svc: svc, Cfg: cfg}
}

// GetLeaderboard godoc
// @Summary Ranked hunters
// @Description Returns every hunter ordered by score, optionally on a single attribute
// @Tags leaderboard
// @Produce json
// @Param attribute query string false "Attribute name (e.g. Strength)"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := lc.Svc.Leaderboard(c.Query("attribute"))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"leaderboard": entries})
}
