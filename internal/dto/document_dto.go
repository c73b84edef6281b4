package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDocumentRequest struct {
	Title        string `json:"title" validate:"required"`
	RawText      string `json:"raw_text" validate:"required"`
	Objective    string `json:"objective" validate:"required"`
	Tone         string `json:"tone"`
	TargetLength string `json:"target_length" validate:"omitempty,oneof=shorter same longer"`
}

type CreateDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowDocumentResponse struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	RawText      string     `json:"raw_text"`
	Objective    string     `json:"objective"`
	Tone         string     `json:"tone,omitempty"`
	TargetLength string     `json:"target_length,omitempty"`
	CurrentText  string     `json:"current_text"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type DocumentListItem struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Objective string    `json:"objective"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateDocumentRequest struct {
	Id           uuid.UUID
	Title        string `json:"title" validate:"required"`
	Objective    string `json:"objective"`
	Tone         string `json:"tone"`
	TargetLength string `json:"target_length" validate:"omitempty,oneof=shorter same longer"`
}

type UpdateDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}
