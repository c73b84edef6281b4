package handler

import (
	"os"

	"github.com/dellis317/provocations/internal/pkg/logger"
	"github.com/dellis317/provocations/internal/pkg/serverutils"
	"github.com/dellis317/provocations/internal/service"
	internalWS "github.com/dellis317/provocations/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NotificationHandler exposes the notification inbox and the websocket
// endpoint that streams new notifications live.
type NotificationHandler struct {
	service *service.NotificationService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewNotificationHandler(service *service.NotificationService, hub *internalWS.Hub, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		hub:     hub,
		logger:  log,
	}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/notification/v1")
	g.Get("/ws", h.ServeWs)

	g.Use(serverutils.JwtMiddleware)
	g.Get("", h.GetNotifications)
	g.Get("/unread-count", h.GetUnreadCount)
	g.Patch("/:id/read", h.MarkAsRead)
	g.Patch("/read-all", h.MarkAllAsRead)
}

// ServeWs authenticates the handshake itself: browsers cannot set an
// Authorization header on a websocket upgrade, so the token may arrive
// as a query parameter instead.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Missing token"))
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid claims"))
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Token missing user_id"))
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user id in token"))
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("notification_handler", "websocket session started", map[string]interface{}{"user_id": userID.String()})
			internalWS.ServeWs(h.hub, conn, userID)
			h.logger.Info("notification_handler", "websocket session ended", map[string]interface{}{"user_id": userID.String()})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID, err := uuid.Parse(serverutils.UserID(c))
	if err != nil {
		return fiber.ErrUnauthorized
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	notifications, total, err := h.service.List(c.Context(), userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(serverutils.SuccessResponse("Notifications retrieved", fiber.Map{
		"items": notifications,
		"total": total,
	}))
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	userID, err := uuid.Parse(serverutils.UserID(c))
	if err != nil {
		return fiber.ErrUnauthorized
	}

	count, err := h.service.UnreadCount(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(serverutils.SuccessResponse("Unread count retrieved", fiber.Map{"count": count}))
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid notification id")
	}

	if err := h.service.MarkAsRead(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(serverutils.SuccessResponse("Notification marked as read", nil))
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := uuid.Parse(serverutils.UserID(c))
	if err != nil {
		return fiber.ErrUnauthorized
	}

	if err := h.service.MarkAllAsRead(c.Context(), userID); err != nil {
		return err
	}
	return c.JSON(serverutils.SuccessResponse("All notifications marked as read", nil))
}
