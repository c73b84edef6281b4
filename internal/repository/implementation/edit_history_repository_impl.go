package implementation

import (
	"context"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/mapper"
	"github.com/dellis317/provocations/internal/model"
	"github.com/dellis317/provocations/internal/repository/contract"
	"github.com/dellis317/provocations/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EditHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EditHistoryMapper
}

func NewEditHistoryRepository(db *gorm.DB) contract.EditHistoryRepository {
	return &EditHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewEditHistoryMapper(),
	}
}

func (r *EditHistoryRepositoryImpl) Create(ctx context.Context, entry *entity.EditHistoryEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *EditHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EditHistoryEntry, error) {
	var models []*model.EditHistoryEntry
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EditHistoryRepositoryImpl) TrimToWindow(ctx context.Context, documentId uuid.UUID, keep int) error {
	// Delete everything older than the newest `keep` entries.
	sub := r.db.WithContext(ctx).
		Model(&model.EditHistoryEntry{}).
		Select("id").
		Where("document_id = ?", documentId).
		Order("created_at DESC").
		Limit(keep)

	return r.db.WithContext(ctx).
		Where("document_id = ? AND id NOT IN (?)", documentId, sub).
		Delete(&model.EditHistoryEntry{}).Error
}
