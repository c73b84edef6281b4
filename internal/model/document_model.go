package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title        string         `gorm:"type:varchar(255);not null"`
	RawText      string         `gorm:"type:text"`
	Objective    string         `gorm:"type:text"`
	Tone         string         `gorm:"type:varchar(100)"`
	TargetLength string         `gorm:"type:varchar(20)"`
	CurrentText  string         `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Document) TableName() string {
	return "documents"
}

// DocumentVersion rows are append-only; there is no update path.
type DocumentVersion struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId    uuid.UUID `gorm:"type:uuid;not null;index:idx_versions_doc_number,priority:1"`
	VersionNumber int       `gorm:"not null;index:idx_versions_doc_number,priority:2"`
	Content       string    `gorm:"type:text;not null"`
	Description   string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (DocumentVersion) TableName() string {
	return "document_versions"
}

type EditHistoryEntry struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Instruction     string    `gorm:"type:text;not null"`
	InstructionType string    `gorm:"type:varchar(20);not null"`
	Summary         string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (EditHistoryEntry) TableName() string {
	return "edit_history_entries"
}
