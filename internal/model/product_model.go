package model

import "time"

type Product struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	NameEn    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_products_name_en"`
	NameLocal string    `gorm:"type:varchar(255);not null"`
	UnitPrice float64   `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
