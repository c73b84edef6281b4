package unitofwork

import (
	"context"
	"fmt"

	"github.com/dellis317/provocations/internal/repository/contract"
	"github.com/dellis317/provocations/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DocumentRepository() contract.DocumentRepository {
	return implementation.NewDocumentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DocumentVersionRepository() contract.DocumentVersionRepository {
	return implementation.NewDocumentVersionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EditHistoryRepository() contract.EditHistoryRepository {
	return implementation.NewEditHistoryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LensRepository() contract.LensRepository {
	return implementation.NewLensRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProvocationRepository() contract.ProvocationRepository {
	return implementation.NewProvocationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) OutlineRepository() contract.OutlineRepository {
	return implementation.NewOutlineRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReferenceRepository() contract.ReferenceRepository {
	return implementation.NewReferenceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReferenceEmbeddingRepository() contract.ReferenceEmbeddingRepository {
	return implementation.NewReferenceEmbeddingRepository(u.getDB())
}
