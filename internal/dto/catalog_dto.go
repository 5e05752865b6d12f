package dto

import "time"

type CreateProductRequest struct {
	NameEn    string  `json:"name_en" validate:"required"`
	NameLocal string  `json:"name_local" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Id        int64
	NameEn    string  `json:"name_en" validate:"required"`
	NameLocal string  `json:"name_local" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

type ProductResponse struct {
	Id        int64      `json:"id"`
	NameEn    string     `json:"name_en"`
	NameLocal string     `json:"name_local"`
	UnitPrice float64    `json:"unit_price"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type SearchProductsResponse struct {
	Query    string            `json:"query"`
	Products []ProductResponse `json:"products"`
}
