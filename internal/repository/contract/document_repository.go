package contract

import (
	"context"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	Update(ctx context.Context, doc *entity.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

// DocumentVersionRepository is deliberately append-only: no Update or
// Delete. Version history is immutable once written.
type DocumentVersionRepository interface {
	Create(ctx context.Context, version *entity.DocumentVersion) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentVersion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type EditHistoryRepository interface {
	Create(ctx context.Context, entry *entity.EditHistoryEntry) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EditHistoryEntry, error)
	// TrimToWindow deletes all but the newest keep entries for a document.
	TrimToWindow(ctx context.Context, documentId uuid.UUID, keep int) error
}
