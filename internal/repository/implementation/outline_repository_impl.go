package implementation

import (
	"context"
	"errors"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/mapper"
	"github.com/dellis317/provocations/internal/model"
	"github.com/dellis317/provocations/internal/repository/contract"
	"github.com/dellis317/provocations/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OutlineRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OutlineMapper
}

func NewOutlineRepository(db *gorm.DB) contract.OutlineRepository {
	return &OutlineRepositoryImpl{
		db:     db,
		mapper: mapper.NewOutlineMapper(),
	}
}

func (r *OutlineRepositoryImpl) Create(ctx context.Context, item *entity.OutlineItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *OutlineRepositoryImpl) Update(ctx context.Context, item *entity.OutlineItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *OutlineRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.OutlineItem{}, id).Error
}

func (r *OutlineRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.OutlineItem, error) {
	var m model.OutlineItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *OutlineRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OutlineItem, error) {
	var models []*model.OutlineItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *OutlineRepositoryImpl) MaxSortOrder(ctx context.Context, documentId uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&model.OutlineItem{}).
		Where("document_id = ?", documentId).
		Select("MAX(sort_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
