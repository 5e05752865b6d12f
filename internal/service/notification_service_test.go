package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"cash-trader-be/internal/constant"
	"cash-trader-be/internal/pkg/logger"
	"cash-trader-be/internal/repository/memory"
	"cash-trader-be/pkg/events"
	"cash-trader-be/pkg/register"
)

func newNotifService(delivery *fakeDelivery) *NotificationService {
	registers := memory.NewRegisterRepository(register.NewCatalog())
	registers.Get("station-1")
	registers.Get("station-2")
	return NewNotificationService(nil, delivery, registers, logger.NewNopLogger())
}

func TestPrintResultRoutedToOwningStation(t *testing.T) {
	delivery := &fakeDelivery{}
	svc := newNotifService(delivery)

	err := svc.handleEvent(context.Background(), events.NewBaseEvent(constant.EventReceiptPrinted, map[string]interface{}{
		"receipt_id": "r-1",
		"station":    "station-2",
		"pane":       "left",
	}))
	assert.NoError(t, err)

	assert.Len(t, delivery.sends, 1)
	assert.Equal(t, "station-2", delivery.sends[0].Station)
	assert.Equal(t, "print_result", delivery.sends[0].Type)
}

func TestPrintEventWithoutStationIsDropped(t *testing.T) {
	delivery := &fakeDelivery{}
	svc := newNotifService(delivery)

	err := svc.handleEvent(context.Background(), events.NewBaseEvent(constant.EventReceiptPrintFailed, map[string]interface{}{
		"receipt_id": "r-1",
	}))
	assert.NoError(t, err)
	assert.Empty(t, delivery.sends)
}

func TestCatalogUpdateFansOutToAllStations(t *testing.T) {
	delivery := &fakeDelivery{}
	svc := newNotifService(delivery)

	err := svc.handleEvent(context.Background(), events.NewBaseEvent(constant.EventCatalogUpdated, map[string]interface{}{
		"product_count": float64(12),
	}))
	assert.NoError(t, err)

	assert.Len(t, delivery.sends, 2)
	stations := []string{delivery.sends[0].Station, delivery.sends[1].Station}
	assert.ElementsMatch(t, []string{"station-1", "station-2"}, stations)
	assert.Equal(t, "catalog_updated", delivery.sends[0].Type)
}
