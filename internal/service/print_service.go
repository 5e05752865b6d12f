package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"cash-trader-be/internal/constant"
	"cash-trader-be/internal/dto"
	"cash-trader-be/internal/entity"
	"cash-trader-be/internal/pkg/logger"
	"cash-trader-be/internal/repository/specification"
	"cash-trader-be/internal/repository/unitofwork"
	"cash-trader-be/pkg/register"
)

type IPrintService interface {
	// Enqueue records a pending receipt and hands it to the print worker.
	Enqueue(ctx context.Context, station, pane string, doc register.ReceiptDocument) (*dto.PrintResponse, error)
	GetReceipt(ctx context.Context, id uuid.UUID) (*dto.ReceiptResponse, error)
	ListReceipts(ctx context.Context, station string, limit int) (*dto.ListReceiptsResponse, error)
}

type printService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewPrintService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) IPrintService {
	return &printService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *printService) Enqueue(ctx context.Context, station, pane string, doc register.ReceiptDocument) (*dto.PrintResponse, error) {
	receipt := &entity.Receipt{
		Id:       uuid.New(),
		Station:  station,
		Pane:     pane,
		Document: doc,
		Status:   constant.ReceiptStatusPending,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ReceiptRepository().Create(ctx, receipt); err != nil {
		return nil, err
	}

	job := dto.PrintJob{
		ReceiptId: receipt.Id,
		Station:   station,
		Pane:      pane,
		Document:  doc,
	}
	payload, err := json.Marshal(job)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, payload); err != nil {
		// The audit row stays pending; the worker never saw the job.
		s.logger.Error("PrintService", "Failed to enqueue print job", map[string]interface{}{
			"receipt_id": receipt.Id,
			"error":      err.Error(),
		})
		return nil, err
	}

	return &dto.PrintResponse{
		ReceiptId: receipt.Id.String(),
		Status:    constant.ReceiptStatusPending,
	}, nil
}

func (s *printService) GetReceipt(ctx context.Context, id uuid.UUID) (*dto.ReceiptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	receipt, err := uow.ReceiptRepository().FindOne(ctx, specification.ByReceiptID{ID: id})
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, nil
	}

	res := toReceiptResponse(receipt)
	return &res, nil
}

func (s *printService) ListReceipts(ctx context.Context, station string, limit int) (*dto.ListReceiptsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.NewestFirst{}}
	if station != "" {
		specs = append(specs, specification.ByStation{Station: station})
	}
	if limit > 0 {
		specs = append(specs, specification.Limit{N: limit})
	}

	receipts, err := uow.ReceiptRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := &dto.ListReceiptsResponse{Receipts: make([]dto.ReceiptResponse, len(receipts))}
	for i, r := range receipts {
		res.Receipts[i] = toReceiptResponse(r)
	}
	return res, nil
}

func toReceiptResponse(r *entity.Receipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		Id:        r.Id,
		Station:   r.Station,
		Pane:      r.Pane,
		Document:  r.Document,
		Status:    r.Status,
		Error:     r.Error,
		PrintedAt: r.PrintedAt,
		CreatedAt: r.CreatedAt,
	}
}
