package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReferenceRequest struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=style template example"`
	Content string `json:"content" validate:"required"`
}

type ReferenceResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type RelevantReferenceResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Excerpt  string    `json:"excerpt"`
	Distance float64   `json:"distance"`
}
