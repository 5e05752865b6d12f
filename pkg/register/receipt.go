package register

import "time"

// ReceiptLine is one printed row.
type ReceiptLine struct {
	DisplayName string `json:"display_name"`
	Qty         string `json:"qty"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   int64  `json:"line_total"`
}

// ReceiptDocument is the sole artifact the core hands to the rendering
// and printing pipeline. The core never formats markup or talks to a
// device.
type ReceiptDocument struct {
	CustomerName string        `json:"customer_name"`
	Lines        []ReceiptLine `json:"lines"`
	ItemCount    int           `json:"item_count"`
	GrandTotal   int64         `json:"grand_total"`
	Timestamp    time.Time     `json:"timestamp"`
}

func buildReceipt(l *Ledger, now time.Time) ReceiptDocument {
	lines := l.Lines()
	out := make([]ReceiptLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, ReceiptLine{
			DisplayName: line.DisplayName,
			Qty:         FormatQty(line.Qty),
			UnitPrice:   FormatPrice(line.UnitPrice),
			LineTotal:   LineTotal(line.UnitPrice, line.Qty),
		})
	}
	return ReceiptDocument{
		CustomerName: l.CustomerName(),
		Lines:        out,
		ItemCount:    l.LineCount(),
		GrandTotal:   l.GrandTotal(),
		Timestamp:    now,
	}
}
