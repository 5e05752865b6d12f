package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"cash-trader-be/internal/constant"
	"cash-trader-be/internal/dto"
	"cash-trader-be/internal/pkg/logger"
	"cash-trader-be/internal/repository/unitofwork"
	"cash-trader-be/pkg/events"
	pktNats "cash-trader-be/pkg/nats"
	"cash-trader-be/pkg/printing"
)

type IPrintWorkerService interface {
	Consume(ctx context.Context) error
}

// printWorkerService drains the print queue. Rendering and the printer
// round-trip happen here so a slow or jammed printer never blocks ringing
// up sales.
type printWorkerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	renderer       printing.Renderer
	printer        printing.Printer
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewPrintWorkerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	renderer printing.Renderer,
	printer printing.Printer,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IPrintWorkerService {
	return &printWorkerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		renderer:       renderer,
		printer:        printer,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *printWorkerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *printWorkerService) processMessage(ctx context.Context, msg *message.Message) {
	var job dto.PrintJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		s.logger.Error("PrintWorker", "Failed to unmarshal print job", map[string]interface{}{"error": err.Error()})
		// Ack malformed jobs to prevent infinite retry.
		msg.Ack()
		return
	}

	s.logger.Info("PrintWorker", "Processing print job", map[string]interface{}{
		"receipt_id": job.ReceiptId,
		"station":    job.Station,
	})

	if err := s.printReceipt(ctx, &job); err != nil {
		s.recordFailure(ctx, &job, err)
		// The failure is recorded on the audit row; retrying the same raster
		// against a dead printer would only stall the queue.
		msg.Ack()
		return
	}

	s.recordSuccess(ctx, &job)
	msg.Ack()
}

func (s *printWorkerService) printReceipt(ctx context.Context, job *dto.PrintJob) error {
	raster, err := s.renderer.Render(ctx, job.Document)
	if err != nil {
		return err
	}
	return s.printer.Print(ctx, raster)
}

func (s *printWorkerService) recordSuccess(ctx context.Context, job *dto.PrintJob) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ReceiptRepository().SetStatus(ctx, job.ReceiptId, constant.ReceiptStatusPrinted, "", &now); err != nil {
		s.logger.Error("PrintWorker", "Failed to mark receipt printed", map[string]interface{}{
			"receipt_id": job.ReceiptId,
			"error":      err.Error(),
		})
	}

	s.publishResult(ctx, constant.EventReceiptPrinted, job, "")
}

func (s *printWorkerService) recordFailure(ctx context.Context, job *dto.PrintJob, cause error) {
	s.logger.Error("PrintWorker", "Print job failed", map[string]interface{}{
		"receipt_id": job.ReceiptId,
		"station":    job.Station,
		"error":      cause.Error(),
	})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ReceiptRepository().SetStatus(ctx, job.ReceiptId, constant.ReceiptStatusFailed, cause.Error(), nil); err != nil {
		s.logger.Error("PrintWorker", "Failed to mark receipt failed", map[string]interface{}{
			"receipt_id": job.ReceiptId,
			"error":      err.Error(),
		})
	}

	s.publishResult(ctx, constant.EventReceiptPrintFailed, job, cause.Error())
}

func (s *printWorkerService) publishResult(ctx context.Context, eventType string, job *dto.PrintJob, errMsg string) {
	if s.eventPublisher == nil {
		return
	}

	data := map[string]interface{}{
		"receipt_id": job.ReceiptId.String(),
		"station":    job.Station,
		"pane":       job.Pane,
	}
	if errMsg != "" {
		data["error"] = errMsg
	}

	if err := s.eventPublisher.Publish(ctx, events.NewBaseEvent(eventType, data)); err != nil {
		s.logger.Warn("PrintWorker", "Failed to publish print result event", map[string]interface{}{
			"receipt_id": job.ReceiptId,
			"error":      err.Error(),
		})
	}
}
