package register

// EditField says which cell of a line is being edited.
type EditField int

const (
	FieldQuantity EditField = iota
	FieldPrice
)

func (f EditField) String() string {
	if f == FieldPrice {
		return "price"
	}
	return "quantity"
}

// EditSession is the single in-progress inline edit of one line's cell.
// At most one exists per register; beginning a new one tears the old
// one down without saving. Original holds the cell's display value at
// the moment editing started, for the front-end to prefill.
type EditSession struct {
	Pane      PaneID    `json:"pane"`
	ProductID int64     `json:"product_id"`
	Field     EditField `json:"field"`
	Original  string    `json:"original"`
}

// EditOutcome reports what a commit did and where input focus belongs
// next. When the quantity edit chains into a price edit, Next carries
// the new session. Otherwise focus returns to the search field of the
// pane owning the edited line, which is not necessarily the active pane.
type EditOutcome struct {
	Committed bool
	Next      *EditSession
	FocusPane PaneID
}
