package mapper

import (
	"encoding/json"

	"cash-trader-be/internal/entity"
	"cash-trader-be/internal/model"
	"cash-trader-be/pkg/register"

	"gorm.io/datatypes"
)

type ReceiptMapper struct{}

func NewReceiptMapper() *ReceiptMapper {
	return &ReceiptMapper{}
}

func (m *ReceiptMapper) ToEntity(r *model.Receipt) *entity.Receipt {
	if r == nil {
		return nil
	}

	var lines []register.ReceiptLine
	// a row written by us always holds a valid lines array
	_ = json.Unmarshal(r.Lines, &lines)

	return &entity.Receipt{
		Id:      r.Id,
		Station: r.Station,
		Pane:    r.Pane,
		Document: register.ReceiptDocument{
			CustomerName: r.CustomerName,
			Lines:        lines,
			ItemCount:    r.ItemCount,
			GrandTotal:   r.GrandTotal,
			Timestamp:    r.DocumentAt,
		},
		Status:    r.Status,
		Error:     r.Error,
		PrintedAt: r.PrintedAt,
		CreatedAt: r.CreatedAt,
	}
}

func (m *ReceiptMapper) ToModel(r *entity.Receipt) *model.Receipt {
	if r == nil {
		return nil
	}

	lines, _ := json.Marshal(r.Document.Lines)

	return &model.Receipt{
		Id:           r.Id,
		Station:      r.Station,
		Pane:         r.Pane,
		CustomerName: r.Document.CustomerName,
		ItemCount:    r.Document.ItemCount,
		GrandTotal:   r.Document.GrandTotal,
		Lines:        datatypes.JSON(lines),
		Status:       r.Status,
		Error:        r.Error,
		DocumentAt:   r.Document.Timestamp,
		PrintedAt:    r.PrintedAt,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *ReceiptMapper) ToEntities(receipts []*model.Receipt) []*entity.Receipt {
	entities := make([]*entity.Receipt, len(receipts))
	for i, r := range receipts {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
