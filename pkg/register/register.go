package register

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Register is one station's order-entry state: the two ledgers, the
// shared suggestion list, the active-pane pointer and the at-most-one
// edit session. It is the single owner of all of them, so the "one
// edit session, one active pane" invariants are enforced here and
// nowhere else.
//
// All methods serialize on the register's mutex. Every transition runs
// to completion before the next input event is processed, which is the
// same discipline the original single-threaded UI loop had.
type Register struct {
	mu      sync.Mutex
	left    *Ledger
	right   *Ledger
	active  PaneID
	suggest *SuggestionList
	edit    *EditSession
}

// NewRegister builds a register over a shared catalog snapshot. The
// left pane is active at startup.
func NewRegister(catalog *Catalog) *Register {
	return &Register{
		left:    newLedger(PaneLeft),
		right:   newLedger(PaneRight),
		active:  PaneLeft,
		suggest: newSuggestionList(catalog),
	}
}

func (r *Register) ledger(pane PaneID) *Ledger {
	if pane == PaneRight {
		return r.right
	}
	return r.left
}

// Focus marks a pane as the active context. Only focus events from a
// pane's own widgets (search field, customer field, ledger view) come
// through here; focus entering the shared suggestion surface must not.
func (r *Register) Focus(pane PaneID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = pane
}

// ActivePane returns the ledger currently resolved as "the current pane".
func (r *Register) ActivePane() PaneID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// AddResult describes a successful add: the affected line and the
// quantity edit session that was opened on it.
type AddResult struct {
	Pane PaneID
	Line Line
	Edit EditSession
}

// SearchInput handles a plain keystroke in a pane's product search
// field: the pane becomes active and the suggestion list is refiltered.
func (r *Register) SearchInput(pane PaneID, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = pane
	r.suggest.SetQuery(strings.TrimSpace(text))
}

// SearchMoveCursor handles Up/Down pressed inside a pane's search
// field. The keys are forwarded to the suggestion cursor; the field
// contents stay untouched but the pane does take the active context.
func (r *Register) SearchMoveCursor(pane PaneID, d Direction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = pane
	r.suggest.MoveCursor(d)
}

// SuggestMoveCursor handles Up/Down on the shared suggestion surface.
// It never changes the active pane.
func (r *Register) SuggestMoveCursor(d Direction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suggest.MoveCursor(d)
}

// SearchSubmit handles Return in a pane's search field. With a cursor
// set the selection wins; otherwise the field's literal text is the
// lookup key. An empty submit with no selection does nothing.
func (r *Register) SearchSubmit(pane PaneID, text string) (*AddResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = pane

	name := strings.TrimSpace(text)
	if sel, ok := r.suggest.Selected(); ok {
		name = sel.NameEn
	}
	if name == "" {
		return nil, nil
	}
	return r.addToActiveLedger(name)
}

// SuggestSubmit handles Return (or a double activation) on the shared
// suggestion surface. With no candidates it is a no-op; with candidates
// but no cursor the first candidate is taken. The selection is added to
// whichever pane is currently active.
func (r *Register) SuggestSubmit() (*AddResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.suggest.Candidates()) == 0 {
		return nil, nil
	}
	if _, ok := r.suggest.Selected(); !ok {
		r.suggest.SelectIndex(0)
	}
	sel, _ := r.suggest.Selected()
	return r.addToActiveLedger(sel.NameEn)
}

// SelectSuggestion sets the cursor directly, as a click on the list does.
func (r *Register) SelectSuggestion(index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suggest.SelectIndex(index)
}

// ActivateSuggestion is select-then-commit in one step; double-clicking
// a candidate behaves exactly like navigating to it and pressing Return.
func (r *Register) ActivateSuggestion(index int) (*AddResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suggest.SelectIndex(index)
	sel, ok := r.suggest.Selected()
	if !ok {
		return nil, nil
	}
	return r.addToActiveLedger(sel.NameEn)
}

// AddToActiveLedger resolves the typed name against the catalog and
// adds it to the active pane's ledger.
func (r *Register) AddToActiveLedger(name string) (*AddResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addToActiveLedger(name)
}

func (r *Register) addToActiveLedger(name string) (*AddResult, error) {
	product, ok := r.suggest.catalog.FindExact(name)
	if !ok {
		// the search field is cleared either way; the ledger stays put
		r.suggest.SetQuery("")
		return nil, ErrProductNotFound
	}

	ledger := r.ledger(r.active)
	line := ledger.Add(product)
	r.suggest.SetQuery("")

	// auto-edit-on-add: a quantity edit opens on the affected line
	// immediately, tearing down any session that was still open.
	session := r.beginEdit(r.active, product.ID, FieldQuantity, line)

	return &AddResult{
		Pane: r.active,
		Line: *line,
		Edit: *session,
	}, nil
}

// BeginEdit opens an inline edit on a line's quantity or price cell. A
// session already open anywhere — either pane — is torn down first and
// its typed-but-uncommitted input discarded. The active pane does not
// change: editing a non-active pane's line is allowed and its commit
// returns focus to that pane, not the active one.
func (r *Register) BeginEdit(pane PaneID, productID int64, field EditField) (*EditSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, ok := r.ledger(pane).Line(productID)
	if !ok {
		return nil, ErrLineNotFound
	}
	session := r.beginEdit(pane, productID, field, line)
	out := *session
	return &out, nil
}

func (r *Register) beginEdit(pane PaneID, productID int64, field EditField, line *Line) *EditSession {
	original := FormatQty(line.Qty)
	if field == FieldPrice {
		original = FormatPrice(line.UnitPrice)
	}
	r.edit = &EditSession{
		Pane:      pane,
		ProductID: productID,
		Field:     field,
		Original:  original,
	}
	return r.edit
}

// CommitEdit closes the open session with the typed input. Input that
// does not parse as a number discards the edit like a cancel — invalid
// input never blocks the register. A committed quantity chains straight
// into a price edit on the same line; a committed price ends the
// session and sends focus back to the owning pane's search field.
func (r *Register) CommitEdit(raw string) (EditOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := r.edit
	if session == nil {
		return EditOutcome{}, ErrNoEditSession
	}
	r.edit = nil

	ledger := r.ledger(session.Pane)
	line, ok := ledger.Line(session.ProductID)
	if !ok {
		// line vanished under the session (cleared or removed); nothing to write
		return EditOutcome{FocusPane: session.Pane}, nil
	}

	switch session.Field {
	case FieldQuantity:
		qty, err := ParseQuantity(raw)
		if err != nil {
			return EditOutcome{FocusPane: session.Pane}, nil
		}
		line.Qty = qty
		next := r.beginEdit(session.Pane, session.ProductID, FieldPrice, line)
		out := *next
		return EditOutcome{Committed: true, Next: &out, FocusPane: session.Pane}, nil

	default: // FieldPrice
		price, err := parsePrice(raw)
		if err != nil {
			return EditOutcome{FocusPane: session.Pane}, nil
		}
		line.UnitPrice = price
		return EditOutcome{Committed: true, FocusPane: session.Pane}, nil
	}
}

// CancelEdit abandons the open session, if any. The line was never
// touched before commit, so there is nothing to restore.
func (r *Register) CancelEdit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edit = nil
}

// Edit returns a copy of the open session, or nil.
func (r *Register) Edit() *EditSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.edit == nil {
		return nil
	}
	out := *r.edit
	return &out
}

// RemoveLine deletes a line from a pane. A session editing that exact
// line is abandoned so no commit can write into a ghost.
func (r *Register) RemoveLine(pane PaneID, productID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.edit != nil && r.edit.Pane == pane && r.edit.ProductID == productID {
		r.edit = nil
	}
	r.ledger(pane).RemoveLine(productID)
}

// Clear empties a pane's ledger and resets its customer name. An edit
// session open on this pane is abandoned first, so later BeginEdit
// calls behave as if no session ever existed.
func (r *Register) Clear(pane PaneID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.edit != nil && r.edit.Pane == pane {
		r.edit = nil
	}
	r.ledger(pane).clear()
}

// SetCustomerName records the customer for a pane and makes that pane
// active, matching the focus rule for the customer field.
func (r *Register) SetCustomerName(pane PaneID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = pane
	r.ledger(pane).SetCustomerName(name)
}

// LineView is one display row of a pane.
type LineView struct {
	ProductID   int64  `json:"product_id"`
	DisplayName string `json:"display_name"`
	Qty         string `json:"qty"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   int64  `json:"line_total"`
}

// PaneState is one pane's renderable state.
type PaneState struct {
	Pane         string     `json:"pane"`
	CustomerName string     `json:"customer_name"`
	Lines        []LineView `json:"lines"`
	ItemCount    int        `json:"item_count"`
	GrandTotal   int64      `json:"grand_total"`
}

// State is the full renderable state of a register.
type State struct {
	Active      string       `json:"active"`
	Query       string       `json:"query"`
	Suggestions []Product    `json:"suggestions"`
	Cursor      int          `json:"cursor"`
	Edit        *EditSession `json:"edit,omitempty"`
	Left        PaneState    `json:"left"`
	Right       PaneState    `json:"right"`
}

// Snapshot renders the whole register through the pricing module. The
// live view and the printed receipt share the same arithmetic, so the
// two can never disagree.
func (r *Register) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	var edit *EditSession
	if r.edit != nil {
		e := *r.edit
		edit = &e
	}

	return State{
		Active:      r.active.String(),
		Query:       r.suggest.Query(),
		Suggestions: r.suggest.Candidates(),
		Cursor:      r.suggest.Cursor(),
		Edit:        edit,
		Left:        paneState(r.left),
		Right:       paneState(r.right),
	}
}

func paneState(l *Ledger) PaneState {
	lines := l.Lines()
	views := make([]LineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, LineView{
			ProductID:   line.ProductID,
			DisplayName: line.DisplayName,
			Qty:         FormatQty(line.Qty),
			UnitPrice:   FormatPrice(line.UnitPrice),
			LineTotal:   LineTotal(line.UnitPrice, line.Qty),
		})
	}
	return PaneState{
		Pane:         l.Pane().String(),
		CustomerName: l.CustomerName(),
		Lines:        views,
		ItemCount:    l.LineCount(),
		GrandTotal:   l.GrandTotal(),
	}
}

// BuildReceipt snapshots a pane into the receipt document handed to the
// print pipeline. Printing never clears the ledger; only an explicit
// clear does.
func (r *Register) BuildReceipt(pane PaneID, now time.Time) ReceiptDocument {
	r.mu.Lock()
	defer r.mu.Unlock()
	return buildReceipt(r.ledger(pane), now)
}

func parsePrice(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return clampPrice(v), nil
}
