package contract

import (
	"context"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/repository/specification"

	"github.com/google/uuid"
)

type ProvocationRepository interface {
	CreateAll(ctx context.Context, provs []*entity.Provocation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Provocation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Provocation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProvocationStatus) error
}
