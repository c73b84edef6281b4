package mapper

import (
	"time"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/model"
)

type ProvocationMapper struct{}

func NewProvocationMapper() *ProvocationMapper {
	return &ProvocationMapper{}
}

func (m *ProvocationMapper) ToEntity(p *model.Provocation) *entity.Provocation {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Provocation{
		Id:            p.Id,
		DocumentId:    p.DocumentId,
		UserId:        p.UserId,
		Type:          entity.ProvocationType(p.Type),
		Title:         p.Title,
		Content:       p.Content,
		SourceExcerpt: p.SourceExcerpt,
		Status:        entity.ProvocationStatus(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ProvocationMapper) ToModel(p *entity.Provocation) *model.Provocation {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Provocation{
		Id:            p.Id,
		DocumentId:    p.DocumentId,
		UserId:        p.UserId,
		Type:          string(p.Type),
		Title:         p.Title,
		Content:       p.Content,
		SourceExcerpt: p.SourceExcerpt,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ProvocationMapper) ToEntities(provs []*model.Provocation) []*entity.Provocation {
	entities := make([]*entity.Provocation, len(provs))
	for i, p := range provs {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
