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
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ReferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReferenceMapper
}

func NewReferenceRepository(db *gorm.DB) contract.ReferenceRepository {
	return &ReferenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewReferenceMapper(),
	}
}

func (r *ReferenceRepositoryImpl) Create(ctx context.Context, ref *entity.ReferenceDocument) error {
	m := r.mapper.ToModel(ref)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*ref = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReferenceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ReferenceDocument{}, id).Error
}

func (r *ReferenceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReferenceDocument, error) {
	var m model.ReferenceDocument
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReferenceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReferenceDocument, error) {
	var models []*model.ReferenceDocument
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type ReferenceEmbeddingRepositoryImpl struct {
	db *gorm.DB
}

func NewReferenceEmbeddingRepository(db *gorm.DB) contract.ReferenceEmbeddingRepository {
	return &ReferenceEmbeddingRepositoryImpl{db: db}
}

func (r *ReferenceEmbeddingRepositoryImpl) Create(ctx context.Context, referenceId uuid.UUID, chunkIndex int, chunk string, embedding pgvector.Vector) error {
	m := &model.ReferenceEmbedding{
		ReferenceId:    referenceId,
		Chunk:          chunk,
		EmbeddingValue: embedding,
		ChunkIndex:     chunkIndex,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ReferenceEmbeddingRepositoryImpl) DeleteByReferenceId(ctx context.Context, referenceId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("reference_id = ?", referenceId).
		Delete(&model.ReferenceEmbedding{}).Error
}

// SearchNearest orders by cosine distance (pgvector <=> operator),
// joining through reference_documents to enforce user scoping.
func (r *ReferenceEmbeddingRepositoryImpl) SearchNearest(ctx context.Context, userId uuid.UUID, embedding pgvector.Vector, limit int) ([]contract.ReferenceMatch, error) {
	var matches []contract.ReferenceMatch
	err := r.db.WithContext(ctx).
		Table("reference_embeddings").
		Select("reference_embeddings.reference_id, reference_embeddings.chunk, reference_embeddings.embedding_value <=> ? AS distance", embedding).
		Joins("JOIN reference_documents ON reference_documents.id = reference_embeddings.reference_id").
		Where("reference_documents.user_id = ? AND reference_documents.deleted_at IS NULL", userId).
		Order("distance ASC").
		Limit(limit).
		Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
