package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"cash-trader-be/internal/dto"
	"cash-trader-be/internal/pkg/logger"
	"cash-trader-be/internal/repository/memory"
	"cash-trader-be/pkg/register"
)

type fakeDelivery struct {
	sends []struct {
		Station string
		Type    string
	}
}

func (d *fakeDelivery) Send(station string, msgType string, payload interface{}) {
	d.sends = append(d.sends, struct {
		Station string
		Type    string
	}{station, msgType})
}

type fakePrintService struct {
	station string
	pane    string
	doc     register.ReceiptDocument
	err     error
}

func (p *fakePrintService) Enqueue(ctx context.Context, station, pane string, doc register.ReceiptDocument) (*dto.PrintResponse, error) {
	p.station = station
	p.pane = pane
	p.doc = doc
	if p.err != nil {
		return nil, p.err
	}
	return &dto.PrintResponse{ReceiptId: "r-1", Status: "pending"}, nil
}

func (p *fakePrintService) GetReceipt(ctx context.Context, id uuid.UUID) (*dto.ReceiptResponse, error) {
	return nil, nil
}

func (p *fakePrintService) ListReceipts(ctx context.Context, station string, limit int) (*dto.ListReceiptsResponse, error) {
	return nil, nil
}

func newTestService() (*registerService, *fakeDelivery, *fakePrintService) {
	catalog := register.NewCatalog()
	catalog.Replace([]register.Product{
		{ID: 1, NameEn: "Rice", NameLocal: "Arisi", UnitPrice: 55},
		{ID: 2, NameEn: "Sugar", NameLocal: "Sakkarai", UnitPrice: 42.5},
	})

	delivery := &fakeDelivery{}
	printer := &fakePrintService{}
	log := logger.NewNopLogger()

	svc := NewRegisterService(memory.NewRegisterRepository(catalog), printer, delivery, log).(*registerService)
	return svc, delivery, printer
}

func TestSearchSubmitAddsLineAndPushesState(t *testing.T) {
	svc, delivery, _ := newTestService()

	res, err := svc.SearchSubmit("station-1", &dto.SearchSubmitRequest{Pane: "left", Text: "Rice"})
	assert.NoError(t, err)
	assert.Len(t, res.State.Left.Lines, 1)
	assert.Equal(t, "Arisi", res.State.Left.Lines[0].DisplayName)

	assert.Len(t, delivery.sends, 1)
	assert.Equal(t, "station-1", delivery.sends[0].Station)
	assert.Equal(t, "state", delivery.sends[0].Type)
}

func TestUnknownProductStillPushesState(t *testing.T) {
	svc, delivery, _ := newTestService()

	res, err := svc.SearchSubmit("station-1", &dto.SearchSubmitRequest{Pane: "left", Text: "Nope"})
	assert.ErrorIs(t, err, register.ErrProductNotFound)
	assert.Empty(t, res.State.Left.Lines)
	assert.Len(t, delivery.sends, 1)
}

func TestStationsAreIsolated(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SearchSubmit("station-1", &dto.SearchSubmitRequest{Pane: "left", Text: "Rice"})
	assert.NoError(t, err)

	other := svc.State("station-2")
	assert.Empty(t, other.State.Left.Lines)
}

func TestEditFlowOverService(t *testing.T) {
	svc, _, _ := newTestService()

	// Adding opens a quantity edit; commit chains to price.
	res, err := svc.SearchSubmit("station-1", &dto.SearchSubmitRequest{Pane: "left", Text: "Sugar"})
	assert.NoError(t, err)
	assert.NotNil(t, res.State.Edit)
	assert.Equal(t, "quantity", res.State.Edit.Field.String())

	commit, err := svc.CommitEdit("station-1", &dto.CommitEditRequest{Input: "3"})
	assert.NoError(t, err)
	assert.True(t, commit.Committed)
	assert.NotNil(t, commit.Next)
	assert.Equal(t, "price", commit.Next.Field.String())
	assert.NotNil(t, commit.State.Edit)

	commit, err = svc.CommitEdit("station-1", &dto.CommitEditRequest{Input: "40"})
	assert.NoError(t, err)
	assert.True(t, commit.Committed)
	assert.Nil(t, commit.Next)
	assert.Nil(t, commit.State.Edit)
	assert.Equal(t, "3", commit.State.Left.Lines[0].Qty)
	assert.Equal(t, "40.00", commit.State.Left.Lines[0].UnitPrice)
}

func TestEmptyCommitInputCancelsSilently(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SearchSubmit("station-1", &dto.SearchSubmitRequest{Pane: "left", Text: "Rice"})
	assert.NoError(t, err)

	commit, err := svc.CommitEdit("station-1", &dto.CommitEditRequest{Input: ""})
	assert.NoError(t, err)
	assert.False(t, commit.Committed)
	assert.Nil(t, commit.State.Edit)
	assert.Equal(t, "1", commit.State.Left.Lines[0].Qty)
}

func TestCommitFocusReturnsToOwningPane(t *testing.T) {
	svc, _, _ := newTestService()

	// Line lives on the left; the right pane is made active before the
	// price commit, which must still send focus back to the left.
	res, err := svc.SearchSubmit("station-1", &dto.SearchSubmitRequest{Pane: "left", Text: "Rice"})
	assert.NoError(t, err)
	productID := res.State.Left.Lines[0].ProductID

	svc.CancelEdit("station-1")
	svc.FocusPane("station-1", &dto.FocusPaneRequest{Pane: "right"})

	_, err = svc.BeginEdit("station-1", &dto.BeginEditRequest{Pane: "left", ProductId: productID, Field: "price"})
	assert.NoError(t, err)

	commit, err := svc.CommitEdit("station-1", &dto.CommitEditRequest{Input: "60"})
	assert.NoError(t, err)
	assert.True(t, commit.Committed)
	assert.Equal(t, "left", commit.FocusPane)
	assert.Equal(t, "right", commit.State.Active, "active pane is untouched by the commit")
}

func TestPrintSendsDocumentAndKeepsLedger(t *testing.T) {
	svc, _, printer := newTestService()

	_, err := svc.SearchSubmit("station-1", &dto.SearchSubmitRequest{Pane: "left", Text: "Rice"})
	assert.NoError(t, err)
	svc.SetCustomerName("station-1", &dto.CustomerNameRequest{Name: "Suresh"})

	res, err := svc.Print(context.Background(), "station-1", &dto.PrintRequest{Pane: "left"})
	assert.NoError(t, err)
	assert.Equal(t, "r-1", res.ReceiptId)

	assert.Equal(t, "station-1", printer.station)
	assert.Equal(t, "left", printer.pane)
	assert.Equal(t, "Suresh", printer.doc.CustomerName)
	assert.Len(t, printer.doc.Lines, 1)

	// Printing never clears the bill.
	state := svc.State("station-1")
	assert.Len(t, state.State.Left.Lines, 1)
}
