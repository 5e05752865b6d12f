package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByReceiptID struct {
	ID uuid.UUID
}

func (s ByReceiptID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type ByStation struct {
	Station string
}

func (s ByStation) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("station = ?", s.Station)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

type Limit struct {
	N int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.N)
}
