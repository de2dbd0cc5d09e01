package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"project/backend/config"
	"project/backend/middleware"
	"project/backend/service"
	"project/backend/utils"
)

type RequestsController struct {
	Svc *service.ProgressionService
	Cfg *config.Config
}

func NewRequestsController(svc *service.ProgressionService, cfg *config.Config) *RequestsController {
	return &RequestsController{Svc: svc, Cfg: cfg}
}

// Submit godoc
// @Summary Request a quest reward
// @Description Opens a pending title request for moderation; an identical pending request is reused, not duplicated
// @Tags requests
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Quest id"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /requests [post]
func (rc *RequestsController) Submit(c *fiber.Ctx) error {
	acting := middleware.ProfileFrom(c)

	var input struct {
		QuestID string `json:"quest_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	request, err := rc.Svc.SubmitRequest(service.ActorFrom(acting), input.QuestID)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, request)
}

// GetPending godoc
// @Summary Own pending request quest ids
// @Tags requests
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /requests/pending [get]
func (rc *RequestsController) GetPending(c *fiber.Ctx) error {
	acting := middleware.ProfileFrom(c)

	ids, err := rc.Svc.PendingQuestIDs(acting.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"quest_ids": ids})
}

// PendingForProfile godoc
// @Summary Pending requests for a hunter
// @Description Admin view of every open request referencing the named profile
// @Tags requests
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/requests/{name} [get]
func (rc *RequestsController) PendingForProfile(c *fiber.Ctx) error {
	requests, err := rc.Svc.PendingRequestsFor(c.Params("name"))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"requests": requests})
}

// Approve godoc
// @Summary Approve a title request
// @Description Grants the quest and title to the requester and closes the request
// @Tags requests
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/requests/{id}/approve [post]
func (rc *RequestsController) Approve(c *fiber.Ctx) error {
	acting := middleware.ProfileFrom(c)

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid request id")
	}

	if err := rc.Svc.ApproveRequest(service.ActorFrom(acting), requestID); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"status": "approved"})
}

// Deny godoc
// @Summary Deny a title request
// @Description Closes the request without granting anything
// @Tags requests
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/requests/{id}/deny [post]
func (rc *RequestsController) Deny(c *fiber.Ctx) error {
	acting := middleware.ProfileFrom(c)

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid request id")
	}

	if err := rc.Svc.DenyRequest(service.ActorFrom(acting), requestID); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"status": "denied"})
}
