package contract

import (
	"context"
	"time"

	"cash-trader-be/internal/entity"
	"cash-trader-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	SetStatus(ctx context.Context, id uuid.UUID, status, errMsg string, printedAt *time.Time) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Receipt, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Receipt, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
