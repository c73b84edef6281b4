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

type ProvocationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProvocationMapper
}

func NewProvocationRepository(db *gorm.DB) contract.ProvocationRepository {
	return &ProvocationRepositoryImpl{
		db:     db,
		mapper: mapper.NewProvocationMapper(),
	}
}

func (r *ProvocationRepositoryImpl) CreateAll(ctx context.Context, provs []*entity.Provocation) error {
	if len(provs) == 0 {
		return nil
	}
	models := make([]*model.Provocation, len(provs))
	for i, p := range provs {
		models[i] = r.mapper.ToModel(p)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*provs[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *ProvocationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Provocation, error) {
	var m model.Provocation
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProvocationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Provocation, error) {
	var models []*model.Provocation
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProvocationRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProvocationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.Provocation{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
