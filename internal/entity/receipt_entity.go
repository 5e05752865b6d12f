package entity

import (
	"time"

	"cash-trader-be/pkg/register"

	"github.com/google/uuid"
)

// Receipt is the persisted audit record of one print request. The
// document snapshot is frozen at print time; later ledger mutations
// never touch it.
type Receipt struct {
	Id        uuid.UUID
	Station   string
	Pane      string
	Document  register.ReceiptDocument
	Status    string
	Error     string
	PrintedAt *time.Time
	CreatedAt time.Time
}
