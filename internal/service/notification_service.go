package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dellis317/provocations/internal/model"
	"github.com/dellis317/provocations/internal/pkg/logger"
	"github.com/dellis317/provocations/internal/repository"
	"github.com/dellis317/provocations/pkg/events"
	pktNats "github.com/dellis317/provocations/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery pushes real-time updates, typically the
// websocket hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus. A nil subscriber (broker not
// configured) leaves notifications off without failing startup.
func (s *NotificationService) Start() {
	if s.subscriber == nil {
		s.logger.Warn("notification_service", "event subscriber not configured, notifications disabled", nil)
		return
	}
	if err := s.subscriber.Subscribe("workshop.>", "notif-worker", s.handleEvent); err != nil {
		s.logger.Error("notification_service", "failed to start event subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("notification_service", "listening for workshop events", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	uidStr, _ := payload["user_id"].(string)
	userID, err := uuid.Parse(uidStr)
	if err != nil {
		s.logger.Warn("notification_service", "event without valid user_id, skipping", map[string]interface{}{
			"event_type": event.EventType(),
		})
		return nil
	}

	title, message := renderNotification(event)
	if title == "" {
		// Unknown event type; nothing to show the user.
		return nil
	}

	metadata, _ := json.Marshal(payload)
	notif := model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		TypeCode:  event.EventType(),
		Title:     title,
		Message:   message,
		Metadata:  datatypes.JSON(metadata),
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateNotification(ctx, &notif); err != nil {
		s.logger.Error("notification_service", "failed to store notification", map[string]interface{}{"error": err.Error()})
		return err
	}

	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}
	return nil
}

func renderNotification(event events.Event) (title, message string) {
	payload := event.Payload()
	switch event.EventType() {
	case events.TypeDocumentEvolved:
		summary, _ := payload["summary"].(string)
		return "Document evolved", summary
	case events.TypeAnalysisCompleted:
		return "Analysis complete", "Lens readings are ready for your document."
	case events.TypeProvocationGenerated:
		// int in-process, float64 after a JSON round trip through NATS
		var count int
		switch v := payload["count"].(type) {
		case float64:
			count = int(v)
		case int:
			count = v
		}
		return "New provocations", fmt.Sprintf("%d provocations generated for your document.", count)
	case events.TypeReferenceUploaded:
		name, _ := payload["name"].(string)
		return "Reference uploaded", fmt.Sprintf("%q is being indexed for similarity search.", name)
	}
	return "", ""
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, notificationID)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
