package model

import (
	"time"

	"github.com/google/uuid"
)

type OutlineItem struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId uuid.UUID `gorm:"type:uuid;not null;index:idx_outline_doc_order,priority:1"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Content    string    `gorm:"type:text"`
	SortOrder  int       `gorm:"not null;index:idx_outline_doc_order,priority:2"`
	IsExpanded bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (OutlineItem) TableName() string {
	return "outline_items"
}
