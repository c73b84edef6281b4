package mapper

import (
	"time"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/model"

	"gorm.io/gorm"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Document{
		Id:           d.Id,
		UserId:       d.UserId,
		Title:        d.Title,
		RawText:      d.RawText,
		Objective:    d.Objective,
		Tone:         d.Tone,
		TargetLength: d.TargetLength,
		CurrentText:  d.CurrentText,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    d.DeletedAt.Valid,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Document{
		Id:           d.Id,
		UserId:       d.UserId,
		Title:        d.Title,
		RawText:      d.RawText,
		Objective:    d.Objective,
		Tone:         d.Tone,
		TargetLength: d.TargetLength,
		CurrentText:  d.CurrentText,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

type DocumentVersionMapper struct{}

func NewDocumentVersionMapper() *DocumentVersionMapper {
	return &DocumentVersionMapper{}
}

func (m *DocumentVersionMapper) ToEntity(v *model.DocumentVersion) *entity.DocumentVersion {
	if v == nil {
		return nil
	}
	return &entity.DocumentVersion{
		Id:            v.Id,
		DocumentId:    v.DocumentId,
		VersionNumber: v.VersionNumber,
		Content:       v.Content,
		Description:   v.Description,
		CreatedAt:     v.CreatedAt,
	}
}

func (m *DocumentVersionMapper) ToModel(v *entity.DocumentVersion) *model.DocumentVersion {
	if v == nil {
		return nil
	}
	return &model.DocumentVersion{
		Id:            v.Id,
		DocumentId:    v.DocumentId,
		VersionNumber: v.VersionNumber,
		Content:       v.Content,
		Description:   v.Description,
		CreatedAt:     v.CreatedAt,
	}
}

func (m *DocumentVersionMapper) ToEntities(versions []*model.DocumentVersion) []*entity.DocumentVersion {
	entities := make([]*entity.DocumentVersion, len(versions))
	for i, v := range versions {
		entities[i] = m.ToEntity(v)
	}
	return entities
}

type EditHistoryMapper struct{}

func NewEditHistoryMapper() *EditHistoryMapper {
	return &EditHistoryMapper{}
}

func (m *EditHistoryMapper) ToEntity(e *model.EditHistoryEntry) *entity.EditHistoryEntry {
	if e == nil {
		return nil
	}
	return &entity.EditHistoryEntry{
		Id:              e.Id,
		DocumentId:      e.DocumentId,
		Instruction:     e.Instruction,
		InstructionType: e.InstructionType,
		Summary:         e.Summary,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *EditHistoryMapper) ToModel(e *entity.EditHistoryEntry) *model.EditHistoryEntry {
	if e == nil {
		return nil
	}
	return &model.EditHistoryEntry{
		Id:              e.Id,
		DocumentId:      e.DocumentId,
		Instruction:     e.Instruction,
		InstructionType: e.InstructionType,
		Summary:         e.Summary,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *EditHistoryMapper) ToEntities(entries []*model.EditHistoryEntry) []*entity.EditHistoryEntry {
	entities := make([]*entity.EditHistoryEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
