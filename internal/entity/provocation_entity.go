package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProvocationType string
type ProvocationStatus string

const (
	ProvocationOpportunity ProvocationType = "opportunity"
	ProvocationFallacy     ProvocationType = "fallacy"
	ProvocationAlternative ProvocationType = "alternative"

	ProvocationPending     ProvocationStatus = "pending"
	ProvocationAddressed   ProvocationStatus = "addressed"
	ProvocationRejected    ProvocationStatus = "rejected"
	ProvocationHighlighted ProvocationStatus = "highlighted"
)

// ValidProvocationStatus reports whether s is one of the four statuses.
func ValidProvocationStatus(s ProvocationStatus) bool {
	switch s {
	case ProvocationPending, ProvocationAddressed, ProvocationRejected, ProvocationHighlighted:
		return true
	}
	return false
}

// Provocation is a generated challenge to the draft. Status is the only
// mutable field after creation; transitions are user-driven with no
// automatic expiry.
type Provocation struct {
	Id            uuid.UUID
	DocumentId    uuid.UUID
	UserId        uuid.UUID
	Type          ProvocationType
	Title         string
	Content       string
	SourceExcerpt string
	Status        ProvocationStatus
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
