package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dellis317/provocations/internal/dto"
	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/repository/specification"
	"github.com/dellis317/provocations/internal/repository/unitofwork"
	"github.com/dellis317/provocations/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOutlineService interface {
	Create(ctx context.Context, userId, documentId uuid.UUID, req *dto.CreateOutlineItemRequest) (*dto.OutlineItemResponse, error)
	List(ctx context.Context, userId, documentId uuid.UUID) ([]dto.OutlineItemResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateOutlineItemRequest) (*dto.OutlineItemResponse, error)
	Reorder(ctx context.Context, userId uuid.UUID, req *dto.ReorderOutlineItemRequest) error
	Delete(ctx context.Context, userId, itemId uuid.UUID) error
	// Expand drafts prose for an outline item from its title and the
	// document's objective.
	Expand(ctx context.Context, userId, itemId uuid.UUID) (*dto.ExpandOutlineItemResponse, error)
}

type outlineService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.Provider
}

func NewOutlineService(uowFactory unitofwork.RepositoryFactory, provider llm.Provider) IOutlineService {
	return &outlineService{uowFactory: uowFactory, provider: provider}
}

func (s *outlineService) Create(ctx context.Context, userId, documentId uuid.UUID, req *dto.CreateOutlineItemRequest) (*dto.OutlineItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.checkDocument(ctx, uow, userId, documentId); err != nil {
		return nil, err
	}

	maxOrder, err := uow.OutlineRepository().MaxSortOrder(ctx, documentId)
	if err != nil {
		return nil, err
	}

	item := &entity.OutlineItem{
		Id:         uuid.New(),
		DocumentId: documentId,
		UserId:     userId,
		Title:      req.Title,
		Content:    req.Content,
		SortOrder:  maxOrder + 1,
		CreatedAt:  time.Now(),
	}
	if err := uow.OutlineRepository().Create(ctx, item); err != nil {
		return nil, err
	}
	return outlineItemResponse(item), nil
}

func (s *outlineService) List(ctx context.Context, userId, documentId uuid.UUID) ([]dto.OutlineItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.checkDocument(ctx, uow, userId, documentId); err != nil {
		return nil, err
	}

	items, err := uow.OutlineRepository().FindAll(ctx,
		specification.ByDocumentID{DocumentID: documentId},
		specification.OrderBy{Field: "sort_order", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.OutlineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *outlineItemResponse(item))
	}
	return out, nil
}

func (s *outlineService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateOutlineItemRequest) (*dto.OutlineItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := s.ownedItem(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	item.Title = req.Title
	item.Content = req.Content
	item.IsExpanded = req.IsExpanded
	now := time.Now()
	item.UpdatedAt = &now

	if err := uow.OutlineRepository().Update(ctx, item); err != nil {
		return nil, err
	}
	return outlineItemResponse(item), nil
}

func (s *outlineService) Reorder(ctx context.Context, userId uuid.UUID, req *dto.ReorderOutlineItemRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := s.ownedItem(ctx, uow, userId, req.Id)
	if err != nil {
		return err
	}

	item.SortOrder = req.SortOrder
	now := time.Now()
	item.UpdatedAt = &now
	return uow.OutlineRepository().Update(ctx, item)
}

func (s *outlineService) Delete(ctx context.Context, userId, itemId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedItem(ctx, uow, userId, itemId); err != nil {
		return err
	}
	return uow.OutlineRepository().Delete(ctx, itemId)
}

func (s *outlineService) Expand(ctx context.Context, userId, itemId uuid.UUID) (*dto.ExpandOutlineItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := s.ownedItem(ctx, uow, userId, itemId)
	if err != nil {
		return nil, err
	}

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: item.DocumentId})
	if err != nil {
		return nil, err
	}
	objective := ""
	if doc != nil {
		objective = doc.Objective
	}

	prompt := fmt.Sprintf(
		"Draft the body text for one section of a document.\n\nDOCUMENT OBJECTIVE: %s\nSECTION TITLE: %s\n\nWrite 2-4 paragraphs of prose for this section. Respond with the prose only, no heading.",
		objective, item.Title,
	)

	content, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadGateway, "section drafting failed, please retry")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fiber.NewError(fiber.StatusBadGateway, "section drafting returned nothing, please retry")
	}

	item.Content = content
	item.IsExpanded = true
	now := time.Now()
	item.UpdatedAt = &now
	if err := uow.OutlineRepository().Update(ctx, item); err != nil {
		return nil, err
	}

	return &dto.ExpandOutlineItemResponse{Id: item.Id, Content: content}, nil
}

func (s *outlineService) checkDocument(ctx context.Context, uow unitofwork.UnitOfWork, userId, documentId uuid.UUID) error {
	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: documentId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if doc == nil {
		return fiber.NewError(fiber.StatusNotFound, "document not found")
	}
	return nil
}

func (s *outlineService) ownedItem(ctx context.Context, uow unitofwork.UnitOfWork, userId, itemId uuid.UUID) (*entity.OutlineItem, error) {
	item, err := uow.OutlineRepository().FindOne(ctx,
		specification.ByID{ID: itemId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "outline item not found")
	}
	return item, nil
}

func outlineItemResponse(item *entity.OutlineItem) *dto.OutlineItemResponse {
	return &dto.OutlineItemResponse{
		Id:         item.Id,
		Title:      item.Title,
		Content:    item.Content,
		SortOrder:  item.SortOrder,
		IsExpanded: item.IsExpanded,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}
