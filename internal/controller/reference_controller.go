package controller

import (
	"github.com/dellis317/provocations/internal/dto"
	"github.com/dellis317/provocations/internal/pkg/serverutils"
	"github.com/dellis317/provocations/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReferenceController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Relevant(ctx *fiber.Ctx) error
}

type referenceController struct {
	referenceService service.IReferenceService
}

func NewReferenceController(referenceService service.IReferenceService) IReferenceController {
	return &referenceController{referenceService: referenceService}
}

func (c *referenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reference/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("relevant", c.Relevant)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Delete(":id", c.Delete)
}

func (c *referenceController) Create(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))

	var req dto.CreateReferenceRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.referenceService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reference uploaded", res))
}

func (c *referenceController) List(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))

	res, err := c.referenceService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("References retrieved", res))
}

func (c *referenceController) Delete(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid reference id")
	}

	if err := c.referenceService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reference deleted", nil))
}

func (c *referenceController) Relevant(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))

	query := ctx.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query parameter q is required")
	}
	limit := ctx.QueryInt("limit", 0)

	res, err := c.referenceService.Relevant(ctx.Context(), userId, query, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Relevant references retrieved", res))
}
