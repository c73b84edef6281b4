package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Lens struct {
	Id         uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId uuid.UUID                   `gorm:"type:uuid;not null;index"`
	UserId     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Type       string                      `gorm:"type:varchar(20);not null"`
	Title      string                      `gorm:"type:varchar(255);not null"`
	Summary    string                      `gorm:"type:text"`
	KeyPoints  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	IsActive   bool                        `gorm:"default:false;index"`
	CreatedAt  time.Time                   `gorm:"autoCreateTime"`
}

func (Lens) TableName() string {
	return "lenses"
}
