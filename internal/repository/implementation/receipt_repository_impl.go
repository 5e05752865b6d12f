package implementation

import (
	"context"
	"errors"
	"time"

	"cash-trader-be/internal/entity"
	"cash-trader-be/internal/mapper"
	"cash-trader-be/internal/model"
	"cash-trader-be/internal/repository/contract"
	"cash-trader-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReceiptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReceiptMapper
}

func NewReceiptRepository(db *gorm.DB) contract.ReceiptRepository {
	return &ReceiptRepositoryImpl{
		db:     db,
		mapper: mapper.NewReceiptMapper(),
	}
}

func (r *ReceiptRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReceiptRepositoryImpl) Create(ctx context.Context, receipt *entity.Receipt) error {
	m := r.mapper.ToModel(receipt)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*receipt = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReceiptRepositoryImpl) SetStatus(ctx context.Context, id uuid.UUID, status, errMsg string, printedAt *time.Time) error {
	updates := map[string]interface{}{
		"status": status,
		"error":  errMsg,
	}
	if printedAt != nil {
		updates["printed_at"] = *printedAt
	}
	return r.db.WithContext(ctx).Model(&model.Receipt{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ReceiptRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Receipt, error) {
	var m model.Receipt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReceiptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Receipt, error) {
	var models []*model.Receipt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReceiptRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Receipt{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
