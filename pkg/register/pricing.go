package register

import (
	"math"
	"strconv"
)

// LineTotal is a line's contribution to the bill: unit price times
// quantity, with fractional rupees always rounded up.
func LineTotal(unitPrice float64, qty Quantity) int64 {
	return int64(math.Ceil(unitPrice * qty.Value()))
}

// GrandTotal sums ceiling-rounded line totals and then rounds the sum
// to the nearest integer. The per-line ceiling and the final round are
// two distinct steps; collapsing them changes results and the printed
// receipt must agree with the live view digit for digit.
func GrandTotal(lines []*Line) int64 {
	var sum float64
	for _, line := range lines {
		sum += math.Ceil(line.UnitPrice * line.Qty.Value())
	}
	return int64(math.Round(sum))
}

// FormatQty renders a quantity for display.
func FormatQty(q Quantity) string {
	return q.String()
}

// FormatPrice renders a unit price with exactly two decimals.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}
