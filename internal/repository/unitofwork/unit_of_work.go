package unitofwork

import (
	"context"

	"github.com/dellis317/provocations/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	DocumentRepository() contract.DocumentRepository
	DocumentVersionRepository() contract.DocumentVersionRepository
	EditHistoryRepository() contract.EditHistoryRepository
	LensRepository() contract.LensRepository
	ProvocationRepository() contract.ProvocationRepository
	OutlineRepository() contract.OutlineRepository
	ReferenceRepository() contract.ReferenceRepository
	ReferenceEmbeddingRepository() contract.ReferenceEmbeddingRepository
}
