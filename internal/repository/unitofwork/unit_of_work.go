package unitofwork

import (
	"context"

	"cash-trader-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	ReceiptRepository() contract.ReceiptRepository
}
