package controller

import (
	"github.com/dellis317/provocations/internal/dto"
	"github.com/dellis317/provocations/internal/pkg/serverutils"
	"github.com/dellis317/provocations/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProvocationController interface {
	RegisterRoutes(r fiber.Router)
	ListByDocument(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type provocationController struct {
	provocationService service.IProvocationService
}

func NewProvocationController(provocationService service.IProvocationService) IProvocationController {
	return &provocationController{provocationService: provocationService}
}

func (c *provocationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/provocation/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("document/:documentId", c.ListByDocument)
	h.Patch(":id/status", c.UpdateStatus)
}

func (c *provocationController) ListByDocument(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	documentId, err := uuid.Parse(ctx.Params("documentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	res, err := c.provocationService.ListByDocument(ctx.Context(), userId, documentId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Provocations retrieved", res))
}

func (c *provocationController) UpdateStatus(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid provocation id")
	}

	var req dto.UpdateProvocationStatusRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := c.provocationService.UpdateStatus(ctx.Context(), userId, id, req.Status); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Provocation status updated", nil))
}
