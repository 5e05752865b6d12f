package specification

import "gorm.io/gorm"

type ByID struct {
	ID int64
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByNameEnFold matches the English name exactly, case-insensitively.
type ByNameEnFold struct {
	NameEn string
}

func (s ByNameEnFold) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(name_en) = LOWER(?)", s.NameEn)
}

type NameEnContains struct {
	Text string
}

func (s NameEnContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name_en ILIKE ?", "%"+s.Text+"%")
}

type ExcludeID struct {
	ID int64
}

func (s ExcludeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id <> ?", s.ID)
}

type OrderByNameEn struct{}

func (s OrderByNameEn) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("name_en ASC")
}
