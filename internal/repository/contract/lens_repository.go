package contract

import (
	"context"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/repository/specification"

	"github.com/google/uuid"
)

type LensRepository interface {
	CreateAll(ctx context.Context, lenses []*entity.Lens) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lens, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lens, error)
	// SetActive marks one lens active and deactivates its siblings in the
	// same document.
	SetActive(ctx context.Context, documentId, lensId uuid.UUID) error
}
