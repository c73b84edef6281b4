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

type LensRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LensMapper
}

func NewLensRepository(db *gorm.DB) contract.LensRepository {
	return &LensRepositoryImpl{
		db:     db,
		mapper: mapper.NewLensMapper(),
	}
}

func (r *LensRepositoryImpl) CreateAll(ctx context.Context, lenses []*entity.Lens) error {
	if len(lenses) == 0 {
		return nil
	}
	models := make([]*model.Lens, len(lenses))
	for i, l := range lenses {
		models[i] = r.mapper.ToModel(l)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*lenses[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *LensRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lens, error) {
	var m model.Lens
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LensRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lens, error) {
	var models []*model.Lens
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// SetActive flips the chosen lens on and its siblings off in one
// transaction, preserving the one-active-lens-per-document invariant.
func (r *LensRepositoryImpl) SetActive(ctx context.Context, documentId, lensId uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Lens{}).
			Where("document_id = ? AND id <> ?", documentId, lensId).
			Update("is_active", false).Error; err != nil {
			return err
		}
		result := tx.Model(&model.Lens{}).
			Where("document_id = ? AND id = ?", documentId, lensId).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
