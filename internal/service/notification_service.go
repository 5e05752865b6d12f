package service

import (
	"context"

	"cash-trader-be/internal/constant"
	"cash-trader-be/internal/pkg/logger"
	"cash-trader-be/internal/repository/memory"
	"cash-trader-be/pkg/events"
	pktNats "cash-trader-be/pkg/nats"
)

// NotificationService bridges the event bus to station displays: print
// results published by the worker come back to the operator as toasts.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	delivery   StateDelivery
	registers  *memory.RegisterRepository
	logger     logger.ILogger
}

func NewNotificationService(sub *pktNats.Subscriber, delivery StateDelivery, registers *memory.RegisterRepository, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		registers:  registers,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("pos.>", "pos-notif-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to pos.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	switch event.EventType() {
	case constant.EventReceiptPrinted, constant.EventReceiptPrintFailed:
		station, _ := payload["station"].(string)
		if station == "" {
			s.logger.Warn("NotificationService", "Print event without station", map[string]interface{}{"type": event.EventType()})
			return nil
		}
		s.delivery.Send(station, "print_result", map[string]interface{}{
			"event":      event.EventType(),
			"receipt_id": payload["receipt_id"],
			"pane":       payload["pane"],
			"error":      payload["error"],
		})

	case constant.EventCatalogUpdated:
		// Catalog changes matter to every station with a live register.
		for _, station := range s.registers.Stations() {
			s.delivery.Send(station, "catalog_updated", payload)
		}

	default:
		s.logger.Info("NotificationService", "Ignoring event", map[string]interface{}{"type": event.EventType()})
	}

	return nil
}
