package mapper

import (
	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/model"
)

type ReferenceMapper struct{}

func NewReferenceMapper() *ReferenceMapper {
	return &ReferenceMapper{}
}

func (m *ReferenceMapper) ToEntity(r *model.ReferenceDocument) *entity.ReferenceDocument {
	if r == nil {
		return nil
	}
	return &entity.ReferenceDocument{
		Id:        r.Id,
		UserId:    r.UserId,
		Name:      r.Name,
		Type:      entity.ReferenceType(r.Type),
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}

func (m *ReferenceMapper) ToModel(r *entity.ReferenceDocument) *model.ReferenceDocument {
	if r == nil {
		return nil
	}
	return &model.ReferenceDocument{
		Id:        r.Id,
		UserId:    r.UserId,
		Name:      r.Name,
		Type:      string(r.Type),
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}

func (m *ReferenceMapper) ToEntities(refs []*model.ReferenceDocument) []*entity.ReferenceDocument {
	entities := make([]*entity.ReferenceDocument, len(refs))
	for i, r := range refs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
