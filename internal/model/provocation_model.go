package model

import (
	"time"

	"github.com/google/uuid"
)

type Provocation struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Type          string    `gorm:"type:varchar(20);not null"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Content       string    `gorm:"type:text;not null"`
	SourceExcerpt string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Provocation) TableName() string {
	return "provocations"
}
