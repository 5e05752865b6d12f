package entity

import "time"

type Product struct {
	Id        int64
	NameEn    string
	NameLocal string
	UnitPrice float64
	CreatedAt time.Time
	UpdatedAt *time.Time
}
