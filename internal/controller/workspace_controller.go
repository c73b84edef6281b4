package controller

import (
	"github.com/dellis317/provocations/internal/dto"
	"github.com/dellis317/provocations/internal/pkg/serverutils"
	"github.com/dellis317/provocations/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWorkspaceController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	Evolve(ctx *fiber.Ctx) error
	Lenses(ctx *fiber.Ctx) error
	Versions(ctx *fiber.Ctx) error
	Diff(ctx *fiber.Ctx) error
}

type workspaceController struct {
	workspaceService service.IWorkspaceService
}

func NewWorkspaceController(workspaceService service.IWorkspaceService) IWorkspaceController {
	return &workspaceController{workspaceService: workspaceService}
}

func (c *workspaceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workspace/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post(":documentId/analyze", c.Analyze)
	h.Post(":documentId/evolve", c.Evolve)
	h.Get(":documentId/lenses", c.Lenses)
	h.Get(":documentId/versions", c.Versions)
	h.Get(":documentId/diff", c.Diff)
}

func (c *workspaceController) Analyze(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	documentId, err := uuid.Parse(ctx.Params("documentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	res, err := c.workspaceService.Analyze(ctx.Context(), userId, documentId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document analyzed", res))
}

func (c *workspaceController) Evolve(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	documentId, err := uuid.Parse(ctx.Params("documentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	var req dto.EvolveDocumentRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.DocumentId = documentId

	res, err := c.workspaceService.Evolve(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document evolved", res))
}

func (c *workspaceController) Lenses(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	documentId, err := uuid.Parse(ctx.Params("documentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	res, err := c.workspaceService.Lenses(ctx.Context(), userId, documentId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Lenses retrieved", res))
}

func (c *workspaceController) Versions(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	documentId, err := uuid.Parse(ctx.Params("documentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	res, err := c.workspaceService.Versions(ctx.Context(), userId, documentId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Versions retrieved", res))
}

// Diff defaults to the latest two versions when from/to are omitted.
func (c *workspaceController) Diff(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	documentId, err := uuid.Parse(ctx.Params("documentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	from := ctx.QueryInt("from", 0)
	to := ctx.QueryInt("to", 0)

	res, err := c.workspaceService.Diff(ctx.Context(), userId, documentId, from, to)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Diff computed", res))
}
