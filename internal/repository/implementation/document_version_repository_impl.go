package implementation

import (
	"context"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/mapper"
	"github.com/dellis317/provocations/internal/model"
	"github.com/dellis317/provocations/internal/repository/contract"
	"github.com/dellis317/provocations/internal/repository/specification"

	"gorm.io/gorm"
)

// DocumentVersionRepositoryImpl exposes no update or delete path; the
// contract keeps version rows immutable.
type DocumentVersionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentVersionMapper
}

func NewDocumentVersionRepository(db *gorm.DB) contract.DocumentVersionRepository {
	return &DocumentVersionRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentVersionMapper(),
	}
}

func (r *DocumentVersionRepositoryImpl) Create(ctx context.Context, version *entity.DocumentVersion) error {
	m := r.mapper.ToModel(version)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*version = *r.mapper.ToEntity(m)
	return nil
}

func (r *DocumentVersionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentVersion, error) {
	var models []*model.DocumentVersion
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DocumentVersionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.DocumentVersion{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
