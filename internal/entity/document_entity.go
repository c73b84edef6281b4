package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is the working draft plus the settings that steer its
// evolution. CurrentText always mirrors the latest stored version.
type Document struct {
	Id           uuid.UUID
	UserId       uuid.UUID `gorm:"type:uuid;index"`
	Title        string
	RawText      string // source material as submitted
	Objective    string
	Tone         string
	TargetLength string // "shorter" | "same" | "longer"
	CurrentText  string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}

// DocumentVersion is one immutable snapshot. Versions are append-only;
// nothing in the system updates or deletes one after creation.
type DocumentVersion struct {
	Id            uuid.UUID
	DocumentId    uuid.UUID
	VersionNumber int
	Content       string
	Description   string
	CreatedAt     time.Time
}

// EditHistoryEntry is one remembered instruction. Only a trailing window
// of 10 per document is retained.
type EditHistoryEntry struct {
	Id              uuid.UUID
	DocumentId      uuid.UUID
	Instruction     string
	InstructionType string
	Summary         string
	CreatedAt       time.Time
}
