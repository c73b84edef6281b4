package entity

import (
	"time"

	"github.com/google/uuid"
)

type LensType string

const (
	LensConsumer  LensType = "consumer"
	LensExecutive LensType = "executive"
	LensTechnical LensType = "technical"
	LensFinancial LensType = "financial"
	LensStrategic LensType = "strategic"
	LensSkeptic   LensType = "skeptic"
)

// Lens is one perspective reading generated at analysis time. IsActive
// is the only field that changes afterwards; at most one lens per
// document is active.
type Lens struct {
	Id         uuid.UUID
	DocumentId uuid.UUID
	UserId     uuid.UUID
	Type       LensType
	Title      string
	Summary    string
	KeyPoints  []string
	IsActive   bool
	CreatedAt  time.Time
}
