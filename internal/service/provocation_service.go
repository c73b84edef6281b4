package service

import (
	"context"

	"github.com/dellis317/provocations/internal/dto"
	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/repository/specification"
	"github.com/dellis317/provocations/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProvocationService interface {
	ListByDocument(ctx context.Context, userId, documentId uuid.UUID) ([]dto.ProvocationResponse, error)
	UpdateStatus(ctx context.Context, userId, provocationId uuid.UUID, status string) error
}

type provocationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProvocationService(uowFactory unitofwork.RepositoryFactory) IProvocationService {
	return &provocationService{uowFactory: uowFactory}
}

func (s *provocationService) ListByDocument(ctx context.Context, userId, documentId uuid.UUID) ([]dto.ProvocationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: documentId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "document not found")
	}

	provs, err := uow.ProvocationRepository().FindAll(ctx,
		specification.ByDocumentID{DocumentID: documentId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return mapProvocationResponses(provs), nil
}

func (s *provocationService) UpdateStatus(ctx context.Context, userId, provocationId uuid.UUID, status string) error {
	if !entity.ValidProvocationStatus(entity.ProvocationStatus(status)) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid provocation status")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	prov, err := uow.ProvocationRepository().FindOne(ctx,
		specification.ByID{ID: provocationId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if prov == nil {
		return fiber.NewError(fiber.StatusNotFound, "provocation not found")
	}

	return uow.ProvocationRepository().UpdateStatus(ctx, provocationId, entity.ProvocationStatus(status))
}
