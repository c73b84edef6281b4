package contract

import (
	"context"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type ReferenceRepository interface {
	Create(ctx context.Context, ref *entity.ReferenceDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReferenceDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReferenceDocument, error)
}

// ReferenceMatch is one similarity-search hit.
type ReferenceMatch struct {
	ReferenceId uuid.UUID
	Chunk       string
	Distance    float64
}

type ReferenceEmbeddingRepository interface {
	Create(ctx context.Context, referenceId uuid.UUID, chunkIndex int, chunk string, embedding pgvector.Vector) error
	DeleteByReferenceId(ctx context.Context, referenceId uuid.UUID) error
	// SearchNearest returns the closest chunks by cosine distance,
	// restricted to the given user's reference documents.
	SearchNearest(ctx context.Context, userId uuid.UUID, embedding pgvector.Vector, limit int) ([]ReferenceMatch, error)
}
