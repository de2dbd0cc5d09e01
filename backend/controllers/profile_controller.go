package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"project/backend/config"
	"project/backend/middleware"
	"project/backend/service"
	"project/backend/utils"
)

type ProfileController struct {
	Svc *service.ProgressionService
	Cfg *config.Config
}

func NewProfileController(svc *service.ProgressionService, cfg *config.Config) *ProfileController {
	return &ProfileController{Svc: svc, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get own profile
// @Description Returns the ledger plus derived stats, overall rank and theme
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	profile := middleware.ProfileFrom(c)

	overallPct, overallRank := service.Overall(profile)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"profile":            profile,
		"stats":              service.Stats(profile),
		"overall_percentage": overallPct,
		"overall_rank":       overallRank,
		"theme":              service.Theme(profile),
	})
}

// GetStats godoc
// @Summary Get derived stats
// @Description Returns per-attribute percentages and ranks computed from raw scores
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/stats [get]
func (pc *ProfileController) GetStats(c *fiber.Ctx) error {
	profile := middleware.ProfileFrom(c)

	overallPct, overallRank := service.Overall(profile)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"stats":              service.Stats(profile),
		"overall_percentage": overallPct,
		"overall_rank":       overallRank,
	})
}

// UpdateName godoc
// @Summary Rename profile
// @Description Reassigns the globally unique hunter name
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/name [put]
func (pc *ProfileController) UpdateName(c *fiber.Ctx) error {
	profile := middleware.ProfileFrom(c)

	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := pc.Svc.Rename(profile.ID, input.Name); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"name": input.Name})
}

// UpdatePassword godoc
// @Summary Change password
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/password [put]
func (pc *ProfileController) UpdatePassword(c *fiber.Ctx) error {
	profile := middleware.ProfileFrom(c)

	var input struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Password == "" {
		return utils.BadRequest(c, "Password must not be empty")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}

	if err := pc.Svc.UpdatePassword(profile.ID, string(hashedPassword)); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"updated": true})
}

// UpdateAvatar godoc
// @Summary Update avatar reference
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /profile/avatar [put]
func (pc *ProfileController) UpdateAvatar(c *fiber.Ctx) error {
	profile := middleware.ProfileFrom(c)

	var input struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := pc.Svc.UpdateAvatar(profile.ID, input.URL); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"avatar_url": input.URL})
}

// UpdateSettings godoc
// @Summary Update settings
// @Description Field-wise merge; omitted fields keep their values
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/settings [put]
func (pc *ProfileController) UpdateSettings(c *fiber.Ctx) error {
	profile := middleware.ProfileFrom(c)

	var patch service.SettingsPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := pc.Svc.UpdateSettings(profile.ID, patch); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"updated": true})
}

// SetActiveTitle godoc
// @Summary Set the displayed title
// @Description Switches the active title to one the hunter has unlocked
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/title [put]
func (pc *ProfileController) SetActiveTitle(c *fiber.Ctx) error {
	profile := middleware.ProfileFrom(c)

	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := pc.Svc.SetActiveTitle(profile.ID, input.Name); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"active_title": input.Name})
}
