package contract

import (
	"context"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/repository/specification"

	"github.com/google/uuid"
)

type OutlineRepository interface {
	Create(ctx context.Context, item *entity.OutlineItem) error
	Update(ctx context.Context, item *entity.OutlineItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.OutlineItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OutlineItem, error)
	MaxSortOrder(ctx context.Context, documentId uuid.UUID) (int, error)
}
