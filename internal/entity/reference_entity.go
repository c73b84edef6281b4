package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReferenceType string

const (
	ReferenceStyle    ReferenceType = "style"
	ReferenceTemplate ReferenceType = "template"
	ReferenceExample  ReferenceType = "example"
)

// ReferenceDocument is read-only context material (a style guide,
// template, or example) injected into evolution prompts. Never edited
// after upload, only deleted.
type ReferenceDocument struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	Type      ReferenceType
	Content   string
	CreatedAt time.Time
}
