package mapper

import (
	"time"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/model"
)

type OutlineMapper struct{}

func NewOutlineMapper() *OutlineMapper {
	return &OutlineMapper{}
}

func (m *OutlineMapper) ToEntity(o *model.OutlineItem) *entity.OutlineItem {
	if o == nil {
		return nil
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	return &entity.OutlineItem{
		Id:         o.Id,
		DocumentId: o.DocumentId,
		UserId:     o.UserId,
		Title:      o.Title,
		Content:    o.Content,
		SortOrder:  o.SortOrder,
		IsExpanded: o.IsExpanded,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *OutlineMapper) ToModel(o *entity.OutlineItem) *model.OutlineItem {
	if o == nil {
		return nil
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	return &model.OutlineItem{
		Id:         o.Id,
		DocumentId: o.DocumentId,
		UserId:     o.UserId,
		Title:      o.Title,
		Content:    o.Content,
		SortOrder:  o.SortOrder,
		IsExpanded: o.IsExpanded,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *OutlineMapper) ToEntities(items []*model.OutlineItem) []*entity.OutlineItem {
	entities := make([]*entity.OutlineItem, len(items))
	for i, o := range items {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
