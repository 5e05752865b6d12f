package dto

import (
	"time"

	"github.com/google/uuid"

	"cash-trader-be/pkg/register"
)

// PrintJob is the payload carried on the print queue between the register
// service and the print worker.
type PrintJob struct {
	ReceiptId uuid.UUID                `json:"receipt_id"`
	Station   string                   `json:"station"`
	Pane      string                   `json:"pane"`
	Document  register.ReceiptDocument `json:"document"`
}

type ReceiptResponse struct {
	Id         uuid.UUID                `json:"id"`
	Station    string                   `json:"station"`
	Pane       string                   `json:"pane"`
	Document   register.ReceiptDocument `json:"document"`
	Status     string                   `json:"status"`
	Error      string                   `json:"error,omitempty"`
	PrintedAt  *time.Time               `json:"printed_at"`
	CreatedAt  time.Time                `json:"created_at"`
}

type ListReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
}
