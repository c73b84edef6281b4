package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/dellis317/provocations/pkg/engine/analyze"
	"github.com/dellis317/provocations/pkg/engine/diffview"
)

type LensResponse struct {
	Id        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	KeyPoints []string  `json:"key_points"`
	IsActive  bool      `json:"is_active"`
}

type ProvocationResponse struct {
	Id            uuid.UUID `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	SourceExcerpt string    `json:"source_excerpt,omitempty"`
	Status        string    `json:"status"`
}

type AnalyzeDocumentResponse struct {
	Lenses       []LensResponse        `json:"lenses"`
	Provocations []ProvocationResponse `json:"provocations"`
}

type EvolveDocumentRequest struct {
	DocumentId    uuid.UUID
	Instruction   string     `json:"instruction" validate:"required"`
	SelectedText  string     `json:"selected_text"`
	ActiveLensId  *uuid.UUID `json:"active_lens_id"`
	ProvocationId *uuid.UUID `json:"provocation_id"`
	Tone          string     `json:"tone"`
	TargetLength  string     `json:"target_length" validate:"omitempty,oneof=shorter same longer"`
}

type EvolveDocumentResponse struct {
	EvolvedText     string           `json:"evolved_text"`
	InstructionType string           `json:"instruction_type"`
	Analysis        analyze.Analysis `json:"analysis"`
	VersionNumber   int              `json:"version_number"`
}

type VersionResponse struct {
	Id            uuid.UUID `json:"id"`
	VersionNumber int       `json:"version_number"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

type DiffResponse struct {
	Lines   []diffview.DiffLine `json:"lines"`
	Added   int                 `json:"added"`
	Removed int                 `json:"removed"`
}
