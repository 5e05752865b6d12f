package service

import (
	"context"
	"time"

	"cash-trader-be/internal/dto"
	"cash-trader-be/internal/pkg/logger"
	"cash-trader-be/internal/repository/memory"
	"cash-trader-be/pkg/register"
)

// StateDelivery pushes console snapshots to the displays of a station.
// Implemented by the websocket hub.
type StateDelivery interface {
	Send(station string, msgType string, payload interface{})
}

type IRegisterService interface {
	State(station string) *dto.StateResponse
	SearchInput(station string, req *dto.SearchInputRequest) *dto.StateResponse
	SearchMoveCursor(station string, req *dto.SearchCursorRequest) *dto.StateResponse
	SearchSubmit(station string, req *dto.SearchSubmitRequest) (*dto.StateResponse, error)
	SuggestMoveCursor(station string, req *dto.CursorMoveRequest) *dto.StateResponse
	SuggestSubmit(station string) (*dto.StateResponse, error)
	SelectSuggestion(station string, req *dto.SelectSuggestionRequest) *dto.StateResponse
	ActivateSuggestion(station string, req *dto.SelectSuggestionRequest) (*dto.StateResponse, error)
	FocusPane(station string, req *dto.FocusPaneRequest) *dto.StateResponse
	BeginEdit(station string, req *dto.BeginEditRequest) (*dto.StateResponse, error)
	CommitEdit(station string, req *dto.CommitEditRequest) (*dto.CommitEditResponse, error)
	CancelEdit(station string) *dto.StateResponse
	RemoveLine(station string, req *dto.RemoveLineRequest) *dto.StateResponse
	ClearPane(station string, req *dto.ClearPaneRequest) *dto.StateResponse
	SetCustomerName(station string, req *dto.CustomerNameRequest) *dto.StateResponse
	Print(ctx context.Context, station string, req *dto.PrintRequest) (*dto.PrintResponse, error)
}

type registerService struct {
	registers    *memory.RegisterRepository
	printService IPrintService
	delivery     StateDelivery
	logger       logger.ILogger
}

func NewRegisterService(registers *memory.RegisterRepository, printService IPrintService, delivery StateDelivery, log logger.ILogger) IRegisterService {
	return &registerService{
		registers:    registers,
		printService: printService,
		delivery:     delivery,
		logger:       log,
	}
}

func parsePane(s string) register.PaneID {
	if s == "right" {
		return register.PaneRight
	}
	return register.PaneLeft
}

func parseDirection(s string) register.Direction {
	if s == "up" {
		return register.CursorUp
	}
	return register.CursorDown
}

// push snapshots the register and fans the state out to the station's
// displays. It is called after every input, including failed ones, because
// a failed input can still change visible state (a cleared search field,
// an abandoned edit).
func (s *registerService) push(station string, reg *register.Register) *dto.StateResponse {
	res := &dto.StateResponse{Station: station, State: reg.Snapshot()}
	if s.delivery != nil {
		s.delivery.Send(station, "state", res)
	}
	return res
}

func (s *registerService) State(station string) *dto.StateResponse {
	reg := s.registers.Get(station)
	return &dto.StateResponse{Station: station, State: reg.Snapshot()}
}

func (s *registerService) SearchInput(station string, req *dto.SearchInputRequest) *dto.StateResponse {
	reg := s.registers.Get(station)
	reg.SearchInput(parsePane(req.Pane), req.Text)
	return s.push(station, reg)
}

func (s *registerService) SearchMoveCursor(station string, req *dto.SearchCursorRequest) *dto.StateResponse {
	reg := s.registers.Get(station)
	reg.SearchMoveCursor(parsePane(req.Pane), parseDirection(req.Direction))
	return s.push(station, reg)
}

func (s *registerService) SearchSubmit(station string, req *dto.SearchSubmitRequest) (*dto.StateResponse, error) {
	reg := s.registers.Get(station)
	_, err := reg.SearchSubmit(parsePane(req.Pane), req.Text)
	return s.push(station, reg), err
}

func (s *registerService) SuggestMoveCursor(station string, req *dto.CursorMoveRequest) *dto.StateResponse {
	reg := s.registers.Get(station)
	reg.SuggestMoveCursor(parseDirection(req.Direction))
	return s.push(station, reg)
}

func (s *registerService) SuggestSubmit(station string) (*dto.StateResponse, error) {
	reg := s.registers.Get(station)
	_, err := reg.SuggestSubmit()
	return s.push(station, reg), err
}

func (s *registerService) SelectSuggestion(station string, req *dto.SelectSuggestionRequest) *dto.StateResponse {
	reg := s.registers.Get(station)
	reg.SelectSuggestion(req.Index)
	return s.push(station, reg)
}

func (s *registerService) ActivateSuggestion(station string, req *dto.SelectSuggestionRequest) (*dto.StateResponse, error) {
	reg := s.registers.Get(station)
	_, err := reg.ActivateSuggestion(req.Index)
	return s.push(station, reg), err
}

func (s *registerService) FocusPane(station string, req *dto.FocusPaneRequest) *dto.StateResponse {
	reg := s.registers.Get(station)
	reg.Focus(parsePane(req.Pane))
	return s.push(station, reg)
}

func (s *registerService) BeginEdit(station string, req *dto.BeginEditRequest) (*dto.StateResponse, error) {
	reg := s.registers.Get(station)

	field := register.FieldQuantity
	if req.Field == "price" {
		field = register.FieldPrice
	}

	_, err := reg.BeginEdit(parsePane(req.Pane), req.ProductId, field)
	return s.push(station, reg), err
}

func (s *registerService) CommitEdit(station string, req *dto.CommitEditRequest) (*dto.CommitEditResponse, error) {
	reg := s.registers.Get(station)
	out, err := reg.CommitEdit(req.Input)
	st := s.push(station, reg)
	if err != nil {
		return nil, err
	}
	return &dto.CommitEditResponse{
		Committed: out.Committed,
		FocusPane: out.FocusPane.String(),
		Next:      out.Next,
		Station:   st.Station,
		State:     st.State,
	}, nil
}

func (s *registerService) CancelEdit(station string) *dto.StateResponse {
	reg := s.registers.Get(station)
	reg.CancelEdit()
	return s.push(station, reg)
}

func (s *registerService) RemoveLine(station string, req *dto.RemoveLineRequest) *dto.StateResponse {
	reg := s.registers.Get(station)
	reg.RemoveLine(parsePane(req.Pane), req.ProductId)
	return s.push(station, reg)
}

func (s *registerService) ClearPane(station string, req *dto.ClearPaneRequest) *dto.StateResponse {
	reg := s.registers.Get(station)
	reg.Clear(parsePane(req.Pane))
	return s.push(station, reg)
}

func (s *registerService) SetCustomerName(station string, req *dto.CustomerNameRequest) *dto.StateResponse {
	reg := s.registers.Get(station)
	reg.SetCustomerName(reg.ActivePane(), req.Name)
	return s.push(station, reg)
}

// Print hands the pane's receipt to the print pipeline. The ledger is left
// untouched so the operator can keep ringing up or reprint.
func (s *registerService) Print(ctx context.Context, station string, req *dto.PrintRequest) (*dto.PrintResponse, error) {
	reg := s.registers.Get(station)
	pane := parsePane(req.Pane)

	res, err := s.printService.Enqueue(ctx, station, pane.String(), reg.BuildReceipt(pane, time.Now()))
	if err != nil {
		return nil, err
	}

	s.logger.Info("RegisterService", "Receipt queued for printing", map[string]interface{}{
		"station":    station,
		"pane":       pane.String(),
		"receipt_id": res.ReceiptId,
	})
	return res, nil
}
