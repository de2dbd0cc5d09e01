package controllers

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/gofiber/fiber/v2"

	"project/backend/config"
	"project/backend/game"
	"project/backend/service"
	"project/backend/utils"
)

type AuthController struct {
	Svc *service.ProgressionService
	Cfg *config.Config
}

func NewAuthController(svc *service.ProgressionService, cfg *config.Config) *AuthController {
	return &AuthController{Svc: svc, Cfg: cfg}
}

// Register godoc
// @Summary Register a new hunter
// @Description Creates a profile with a default ledger and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name"`
		Password string `json:"password"`
		Cohort   string `json:"cohort"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Cohort == "" {
		input.Cohort = string(game.CohortMale2025)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}

	profile, err := ac.Svc.Register(input.Name, string(hashedPassword), game.Cohort(input.Cohort))
	if err != nil {
		return serviceError(c, err)
	}

	token, err := utils.GenerateJWTToken(profile.ID, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}

	return utils.Created(c, fiber.Map{
		"token":   token,
		"profile": profile,
	})
}

// Login godoc
// @Summary Hunter login
// @Description Authenticate by name and password and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	profile, err := ac.Svc.ProfileByName(input.Name)
	if err != nil {
		// Do not reveal whether the name exists.
		return utils.Unauthorized(c, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(profile.ID, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token":   token,
		"profile": profile,
	})
}
