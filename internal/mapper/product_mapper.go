package mapper

import (
	"time"

	"cash-trader-be/internal/entity"
	"cash-trader-be/internal/model"
	"cash-trader-be/pkg/register"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Product{
		Id:        p.Id,
		NameEn:    p.NameEn,
		NameLocal: p.NameLocal,
		UnitPrice: p.UnitPrice,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Product{
		Id:        p.Id,
		NameEn:    p.NameEn,
		NameLocal: p.NameLocal,
		UnitPrice: p.UnitPrice,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

// ToSnapshot converts store entities into catalog snapshot records.
func (m *ProductMapper) ToSnapshot(products []*entity.Product) []register.Product {
	out := make([]register.Product, len(products))
	for i, p := range products {
		out[i] = register.Product{
			ID:        p.Id,
			NameEn:    p.NameEn,
			NameLocal: p.NameLocal,
			UnitPrice: p.UnitPrice,
		}
	}
	return out
}
