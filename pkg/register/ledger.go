package register

// PaneID names one of the two order panes.
type PaneID int

const (
	PaneLeft PaneID = iota
	PaneRight
)

func (p PaneID) String() string {
	if p == PaneRight {
		return "right"
	}
	return "left"
}

// Line is one product's entry within a ledger.
type Line struct {
	ProductID   int64
	DisplayName string
	UnitPrice   float64
	Qty         Quantity
}

// Ledger is one pane's order: an insertion-ordered mapping from product
// id to a mutable line, plus an optional customer name. It lives for
// the whole process; Clear empties it but never destroys it.
type Ledger struct {
	pane         PaneID
	order        []int64
	lines        map[int64]*Line
	customerName string
}

func newLedger(pane PaneID) *Ledger {
	return &Ledger{
		pane:  pane,
		lines: make(map[int64]*Line),
	}
}

func (l *Ledger) Pane() PaneID {
	return l.pane
}

// Add appends a line for the product, or increments the existing line's
// quantity by one, preserving its integer-vs-decimal form. Each product
// id appears at most once.
func (l *Ledger) Add(p Product) *Line {
	if line, ok := l.lines[p.ID]; ok {
		line.Qty = line.Qty.Increment()
		return line
	}
	line := &Line{
		ProductID:   p.ID,
		DisplayName: p.NameLocal,
		UnitPrice:   clampPrice(p.UnitPrice),
		Qty:         One(),
	}
	l.lines[p.ID] = line
	l.order = append(l.order, p.ID)
	return line
}

// Line returns the line for a product id, if present.
func (l *Ledger) Line(productID int64) (*Line, bool) {
	line, ok := l.lines[productID]
	return line, ok
}

// Lines returns the lines in insertion order.
func (l *Ledger) Lines() []*Line {
	out := make([]*Line, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.lines[id])
	}
	return out
}

// RemoveLine deletes the line if present. Removing an absent line is a no-op.
func (l *Ledger) RemoveLine(productID int64) {
	if _, ok := l.lines[productID]; !ok {
		return
	}
	delete(l.lines, productID)
	for i, id := range l.order {
		if id == productID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// SetQuantity writes a new quantity to a line.
func (l *Ledger) SetQuantity(productID int64, q Quantity) error {
	line, ok := l.lines[productID]
	if !ok {
		return ErrLineNotFound
	}
	line.Qty = q
	return nil
}

// SetUnitPrice writes a new unit price, clamped to zero and rounded to
// two decimals.
func (l *Ledger) SetUnitPrice(productID int64, price float64) error {
	line, ok := l.lines[productID]
	if !ok {
		return ErrLineNotFound
	}
	line.UnitPrice = clampPrice(price)
	return nil
}

func (l *Ledger) CustomerName() string {
	return l.customerName
}

func (l *Ledger) SetCustomerName(name string) {
	l.customerName = name
}

// clear wipes all lines and resets the customer name. The register is
// responsible for abandoning any edit session first.
func (l *Ledger) clear() {
	l.order = nil
	l.lines = make(map[int64]*Line)
	l.customerName = ""
}

// GrandTotal applies the two-stage rounding rule over all lines.
func (l *Ledger) GrandTotal() int64 {
	return GrandTotal(l.Lines())
}

// LineCount is the number of distinct lines, not total units.
func (l *Ledger) LineCount() int {
	return len(l.order)
}

func clampPrice(p float64) float64 {
	if p < 0 {
		return 0
	}
	return round2(p)
}
