package service

import (
	"context"
	"time"

	"github.com/dellis317/provocations/internal/dto"
	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/repository/specification"
	"github.com/dellis317/provocations/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error)
	Show(ctx context.Context, userId, documentId uuid.UUID) (*dto.ShowDocumentResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.DocumentListItem, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.UpdateDocumentResponse, error)
	Delete(ctx context.Context, userId, documentId uuid.UUID) error
}

type documentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDocumentService(uowFactory unitofwork.RepositoryFactory) IDocumentService {
	return &documentService{uowFactory: uowFactory}
}

func (s *documentService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc := &entity.Document{
		Id:           uuid.New(),
		UserId:       userId,
		Title:        req.Title,
		RawText:      req.RawText,
		Objective:    req.Objective,
		Tone:         req.Tone,
		TargetLength: req.TargetLength,
		// the draft starts out as the source material itself
		CurrentText: req.RawText,
		CreatedAt:   time.Now(),
	}

	if err := uow.DocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	return &dto.CreateDocumentResponse{Id: doc.Id}, nil
}

func (s *documentService) Show(ctx context.Context, userId, documentId uuid.UUID) (*dto.ShowDocumentResponse, error) {
	doc, err := s.ownedDocument(ctx, userId, documentId)
	if err != nil {
		return nil, err
	}

	return &dto.ShowDocumentResponse{
		Id:           doc.Id,
		Title:        doc.Title,
		RawText:      doc.RawText,
		Objective:    doc.Objective,
		Tone:         doc.Tone,
		TargetLength: doc.TargetLength,
		CurrentText:  doc.CurrentText,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func (s *documentService) List(ctx context.Context, userId uuid.UUID) ([]dto.DocumentListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DocumentListItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, dto.DocumentListItem{
			Id:        doc.Id,
			Title:     doc.Title,
			Objective: doc.Objective,
			CreatedAt: doc.CreatedAt,
		})
	}
	return items, nil
}

func (s *documentService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.UpdateDocumentResponse, error) {
	doc, err := s.ownedDocument(ctx, userId, req.Id)
	if err != nil {
		return nil, err
	}

	doc.Title = req.Title
	doc.Objective = req.Objective
	doc.Tone = req.Tone
	doc.TargetLength = req.TargetLength
	now := time.Now()
	doc.UpdatedAt = &now

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	return &dto.UpdateDocumentResponse{Id: doc.Id}, nil
}

func (s *documentService) Delete(ctx context.Context, userId, documentId uuid.UUID) error {
	if _, err := s.ownedDocument(ctx, userId, documentId); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DocumentRepository().Delete(ctx, documentId)
}

// ownedDocument loads a document and enforces that the caller owns it.
// A document owned by someone else reads as not found.
func (s *documentService) ownedDocument(ctx context.Context, userId, documentId uuid.UUID) (*entity.Document, error) {
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
	return doc, nil
}
