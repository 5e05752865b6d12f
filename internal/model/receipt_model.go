package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Receipt struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Station      string         `gorm:"type:varchar(64);not null;index"`
	Pane         string         `gorm:"type:varchar(8);not null"`
	CustomerName string         `gorm:"type:varchar(255)"`
	ItemCount    int            `gorm:"not null"`
	GrandTotal   int64          `gorm:"not null"`
	Lines        datatypes.JSON `gorm:"not null"`
	Status       string         `gorm:"type:varchar(16);not null;index"`
	Error        string         `gorm:"type:text"`
	DocumentAt   time.Time      `gorm:"not null"`
	PrintedAt    *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Receipt) TableName() string {
	return "receipts"
}
