package dto

import "cash-trader-be/pkg/register"

// Pane values on the wire are "left" and "right".

type SearchInputRequest struct {
	Pane string `json:"pane" validate:"required,oneof=left right"`
	Text string `json:"text"`
}

type SearchSubmitRequest struct {
	Pane string `json:"pane" validate:"required,oneof=left right"`
	Text string `json:"text"`
}

type SearchCursorRequest struct {
	Pane      string `json:"pane" validate:"required,oneof=left right"`
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type CursorMoveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type SelectSuggestionRequest struct {
	Index int `json:"index" validate:"gte=0"`
}

type FocusPaneRequest struct {
	Pane string `json:"pane" validate:"required,oneof=left right"`
}

type BeginEditRequest struct {
	Pane      string `json:"pane" validate:"required,oneof=left right"`
	ProductId int64  `json:"product_id" validate:"required"`
	Field     string `json:"field" validate:"required,oneof=quantity price"`
}

// Input carries no validation tag: an empty or garbled commit is a
// silent cancel inside the register, never a request error.
type CommitEditRequest struct {
	Input string `json:"input"`
}

// CommitEditResponse carries the commit outcome alongside the refreshed
// state. FocusPane names the pane whose search field takes focus next,
// which is the pane owning the edited line, not necessarily the active
// one. Next is set when a quantity commit chains into a price edit.
type CommitEditResponse struct {
	Committed bool                  `json:"committed"`
	FocusPane string                `json:"focus_pane"`
	Next      *register.EditSession `json:"next,omitempty"`
	Station   string                `json:"station"`
	State     register.State        `json:"state"`
}

type RemoveLineRequest struct {
	Pane      string `json:"pane" validate:"required,oneof=left right"`
	ProductId int64  `json:"product_id" validate:"required"`
}

type ClearPaneRequest struct {
	Pane string `json:"pane" validate:"required,oneof=left right"`
}

type CustomerNameRequest struct {
	Name string `json:"name"`
}

type PrintRequest struct {
	Pane string `json:"pane" validate:"required,oneof=left right"`
}

type PrintResponse struct {
	ReceiptId string `json:"receipt_id"`
	Status    string `json:"status"`
}

// StateResponse wraps the full console snapshot pushed after every input.
type StateResponse struct {
	Station string         `json:"station"`
	State   register.State `json:"state"`
}
