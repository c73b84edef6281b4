package controller

import (
	"github.com/dellis317/provocations/internal/dto"
	"github.com/dellis317/provocations/internal/pkg/serverutils"
	"github.com/dellis317/provocations/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOutlineController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Reorder(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Expand(ctx *fiber.Ctx) error
}

type outlineController struct {
	outlineService service.IOutlineService
}

func NewOutlineController(outlineService service.IOutlineService) IOutlineController {
	return &outlineController{outlineService: outlineService}
}

func (c *outlineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/outline/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("document/:documentId", c.Create)
	h.Get("document/:documentId", c.List)
	h.Put(":id", c.Update)
	h.Put(":id/reorder", c.Reorder)
	h.Post(":id/expand", c.Expand)
	h.Delete(":id", c.Delete)
}

func (c *outlineController) Create(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	documentId, err := uuid.Parse(ctx.Params("documentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	var req dto.CreateOutlineItemRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.outlineService.Create(ctx.Context(), userId, documentId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Outline item created", res))
}

func (c *outlineController) List(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	documentId, err := uuid.Parse(ctx.Params("documentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	res, err := c.outlineService.List(ctx.Context(), userId, documentId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Outline retrieved", res))
}

func (c *outlineController) Update(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid outline item id")
	}

	var req dto.UpdateOutlineItemRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.Id = id

	res, err := c.outlineService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Outline item updated", res))
}

func (c *outlineController) Reorder(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid outline item id")
	}

	var req dto.ReorderOutlineItemRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.Id = id

	if err := c.outlineService.Reorder(ctx.Context(), userId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Outline item reordered", nil))
}

func (c *outlineController) Expand(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid outline item id")
	}

	res, err := c.outlineService.Expand(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Outline item expanded", res))
}

func (c *outlineController) Delete(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid outline item id")
	}

	if err := c.outlineService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Outline item deleted", nil))
}
