package mapper

import (
	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/model"

	"gorm.io/datatypes"
)

type LensMapper struct{}

func NewLensMapper() *LensMapper {
	return &LensMapper{}
}

func (m *LensMapper) ToEntity(l *model.Lens) *entity.Lens {
	if l == nil {
		return nil
	}
	return &entity.Lens{
		Id:         l.Id,
		DocumentId: l.DocumentId,
		UserId:     l.UserId,
		Type:       entity.LensType(l.Type),
		Title:      l.Title,
		Summary:    l.Summary,
		KeyPoints:  []string(l.KeyPoints),
		IsActive:   l.IsActive,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *LensMapper) ToModel(l *entity.Lens) *model.Lens {
	if l == nil {
		return nil
	}
	return &model.Lens{
		Id:         l.Id,
		DocumentId: l.DocumentId,
		UserId:     l.UserId,
		Type:       string(l.Type),
		Title:      l.Title,
		Summary:    l.Summary,
		KeyPoints:  datatypes.NewJSONSlice(l.KeyPoints),
		IsActive:   l.IsActive,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *LensMapper) ToEntities(lenses []*model.Lens) []*entity.Lens {
	entities := make([]*entity.Lens, len(lenses))
	for i, l := range lenses {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
