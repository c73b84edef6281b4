package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dellis317/provocations/internal/dto"
	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/pkg/logger"
	"github.com/dellis317/provocations/internal/repository/specification"
	"github.com/dellis317/provocations/internal/repository/unitofwork"
	"github.com/dellis317/provocations/pkg/embedding"
	"github.com/dellis317/provocations/pkg/events"
	"github.com/dellis317/provocations/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type IReferenceService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateReferenceRequest) (*dto.ReferenceResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.ReferenceResponse, error)
	Delete(ctx context.Context, userId, referenceId uuid.UUID) error
	// Relevant runs similarity search over the user's embedded reference
	// chunks for an ad hoc query.
	Relevant(ctx context.Context, userId uuid.UUID, query string, limit int) ([]dto.RelevantReferenceResponse, error)
}

type referenceService struct {
	uowFactory        unitofwork.RepositoryFactory
	publisherService  IPublisherService
	embeddingProvider embedding.EmbeddingProvider
	eventPublisher    *nats.Publisher
	logger            logger.ILogger
}

func NewReferenceService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *nats.Publisher,
	log logger.ILogger,
) IReferenceService {
	return &referenceService{
		uowFactory:        uowFactory,
		publisherService:  publisherService,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
		logger:            log,
	}
}

func (s *referenceService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateReferenceRequest) (*dto.ReferenceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ref := &entity.ReferenceDocument{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		Type:      entity.ReferenceType(req.Type),
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := uow.ReferenceRepository().Create(ctx, ref); err != nil {
		return nil, err
	}

	// Embedding happens off the request path; a queue failure only
	// delays similarity search, the upload itself stands.
	payload, _ := json.Marshal(dto.PublishEmbedReferenceMessage{ReferenceId: ref.Id})
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("reference_service", "failed to queue embedding", map[string]interface{}{
			"reference_id": ref.Id.String(), "error": err.Error(),
		})
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewReferenceUploaded(userId.String(), ref.Id.String(), ref.Name, string(ref.Type))); err != nil {
			s.logger.Warn("reference_service", "event publish failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return referenceResponse(ref), nil
}

func (s *referenceService) List(ctx context.Context, userId uuid.UUID) ([]dto.ReferenceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	refs, err := uow.ReferenceRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReferenceResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, *referenceResponse(ref))
	}
	return out, nil
}

func (s *referenceService) Delete(ctx context.Context, userId, referenceId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ref, err := uow.ReferenceRepository().FindOne(ctx,
		specification.ByID{ID: referenceId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if ref == nil {
		return fiber.NewError(fiber.StatusNotFound, "reference not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ReferenceEmbeddingRepository().DeleteByReferenceId(ctx, referenceId); err != nil {
		return err
	}
	if err := uow.ReferenceRepository().Delete(ctx, referenceId); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *referenceService) Relevant(ctx context.Context, userId uuid.UUID, query string, limit int) ([]dto.RelevantReferenceResponse, error) {
	if s.embeddingProvider == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "similarity search is not configured")
	}
	if limit <= 0 {
		limit = relevantReferenceLimit
	}

	res, err := s.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadGateway, "query embedding failed, please retry")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	matches, err := uow.ReferenceEmbeddingRepository().SearchNearest(ctx, userId, pgvector.NewVector(res.Embedding.Values), limit)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return []dto.RelevantReferenceResponse{}, nil
	}

	ids := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ReferenceId)
	}
	refs, err := uow.ReferenceRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]*entity.ReferenceDocument, len(refs))
	for _, ref := range refs {
		byId[ref.Id] = ref
	}

	out := make([]dto.RelevantReferenceResponse, 0, len(matches))
	for _, m := range matches {
		ref, ok := byId[m.ReferenceId]
		if !ok {
			continue
		}
		out = append(out, dto.RelevantReferenceResponse{
			Id:       ref.Id,
			Name:     ref.Name,
			Type:     string(ref.Type),
			Excerpt:  m.Chunk,
			Distance: m.Distance,
		})
	}
	return out, nil
}

func referenceResponse(ref *entity.ReferenceDocument) *dto.ReferenceResponse {
	return &dto.ReferenceResponse{
		Id:        ref.Id,
		Name:      ref.Name,
		Type:      string(ref.Type),
		CreatedAt: ref.CreatedAt,
	}
}
