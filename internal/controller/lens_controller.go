package controller

import (
	"github.com/dellis317/provocations/internal/pkg/serverutils"
	"github.com/dellis317/provocations/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILensController interface {
	RegisterRoutes(r fiber.Router)
	Activate(ctx *fiber.Ctx) error
}

type lensController struct {
	workspaceService service.IWorkspaceService
}

func NewLensController(workspaceService service.IWorkspaceService) ILensController {
	return &lensController{workspaceService: workspaceService}
}

func (c *lensController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lens/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Put(":id/activate", c.Activate)
}

func (c *lensController) Activate(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(serverutils.UserID(ctx))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid lens id")
	}

	if err := c.workspaceService.ActivateLens(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Lens activated", nil))
}
