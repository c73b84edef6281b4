package entity

import (
	"time"

	"github.com/google/uuid"
)

// OutlineItem is one section of the document's working outline.
// SortOrder totally orders items within a document. IsExpanded records
// whether prose has been drafted into the item.
type OutlineItem struct {
	Id         uuid.UUID
	DocumentId uuid.UUID
	UserId     uuid.UUID
	Title      string
	Content    string
	SortOrder  int
	IsExpanded bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
