package controllers

import (
	"github.com/gofiber/fiber/v2"

	"project/backend/config"
	"project/backend/game"
	"project/backend/middleware"
	"project/backend/service"
	"project/backend/utils"
)

type QuestsController struct {
	Svc *service.ProgressionService
	Cfg *config.Config
}

func NewQuestsController(svc *service.ProgressionService, cfg *config.Config) *QuestsController {
	return &QuestsController{Svc: svc, Cfg: cfg}
}

// GetMissions godoc
// @Summary Mission catalog with completion state
// @Description Returns every mission path annotated with the caller's completed quests, mythic availability and open requests
// @Tags quests
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /missions [get]
func (qc *QuestsController) GetMissions(c *fiber.Ctx) error {
	profile := middleware.ProfileFrom(c)

	pending, err := qc.Svc.PendingQuestIDs(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}

	completed := profile.CompletedSet()
	paths := game.MissionPaths()
	annotated := make([]fiber.Map, 0, len(paths))
	for _, path := range paths {
		annotated = append(annotated, fiber.Map{
			"path":             path,
			"completed_quests": questStates(path, completed),
			"mythic_unlocked":  game.CanClaimMythic(path, completed),
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"paths":            annotated,
		"pending_requests": pending,
		"rank_colors":      game.RankColors,
	})
}

func questStates(path game.MissionPath, completed map[string]bool) map[string]bool {
	states := make(map[string]bool, len(path.Quests))
	for _, q := range path.Quests {
		states[q.ID] = completed[q.ID]
	}
	return states
}

// ClaimQuest godoc
// @Summary Direct quest grant
// @Description Admin-only: marks a quest completed for the target hunter and unlocks its reward title
// @Tags quests
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Target name and quest id"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 423 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/quests/claim [post]
func (qc *QuestsController) ClaimQuest(c *fiber.Ctx) error {
	acting := middleware.ProfileFrom(c)

	var input struct {
		Target  string `json:"target"`
		QuestID string `json:"quest_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	targetID := acting.ID
	if input.Target != "" && input.Target != acting.Name {
		target, err := qc.Svc.ProfileByName(input.Target)
		if err != nil {
			return serviceError(c, err)
		}
		targetID = target.ID
	}

	if err := qc.Svc.ClaimQuest(service.ActorFrom(acting), targetID, input.QuestID); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"quest_id": input.QuestID})
}
