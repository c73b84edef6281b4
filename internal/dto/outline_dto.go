package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateOutlineItemRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type UpdateOutlineItemRequest struct {
	Id         uuid.UUID
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content"`
	IsExpanded bool   `json:"is_expanded"`
}

type ReorderOutlineItemRequest struct {
	Id        uuid.UUID
	SortOrder int `json:"sort_order" validate:"min=0"`
}

type ExpandOutlineItemResponse struct {
	Id      uuid.UUID `json:"id"`
	Content string    `json:"content"`
}

type OutlineItemResponse struct {
	Id         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	SortOrder  int        `json:"sort_order"`
	IsExpanded bool       `json:"is_expanded"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}
