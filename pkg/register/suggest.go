package register

// Direction is a cursor move on the suggestion list.
type Direction int

const (
	CursorDown Direction = iota
	CursorUp
)

// CursorNone marks the no-selection cursor state.
const CursorNone = -1

// SuggestionList filters the catalog snapshot by the typed text and
// carries a wrap-around selection cursor. The cursor is only meaningful
// against the current candidate slice and resets whenever the
// candidates are recomputed.
type SuggestionList struct {
	catalog    *Catalog
	query      string
	candidates []Product
	cursor     int
}

func newSuggestionList(catalog *Catalog) *SuggestionList {
	s := &SuggestionList{catalog: catalog, cursor: CursorNone}
	s.SetQuery("")
	return s
}

// SetQuery recomputes the candidates and invalidates the cursor.
func (s *SuggestionList) SetQuery(q string) {
	s.query = q
	s.candidates = s.catalog.Search(q)
	s.cursor = CursorNone
}

func (s *SuggestionList) Query() string {
	return s.query
}

// Candidates returns the current candidate sequence.
func (s *SuggestionList) Candidates() []Product {
	return s.candidates
}

// Cursor returns the selected index, or CursorNone.
func (s *SuggestionList) Cursor() int {
	return s.cursor
}

// MoveCursor advances or retreats the selection by one with wrap-around.
// From no selection, Down lands on the first candidate and Up on the
// last. The ring is closed; it never clamps at an edge. With no
// candidates the move is a no-op.
func (s *SuggestionList) MoveCursor(d Direction) {
	n := len(s.candidates)
	if n == 0 {
		return
	}
	switch d {
	case CursorDown:
		if s.cursor == CursorNone {
			s.cursor = 0
		} else {
			s.cursor = (s.cursor + 1) % n
		}
	case CursorUp:
		if s.cursor == CursorNone {
			s.cursor = n - 1
		} else {
			s.cursor = (s.cursor - 1 + n) % n
		}
	}
}

// SelectIndex sets the cursor directly, as a click on the list does.
// Out-of-range indexes clear the selection.
func (s *SuggestionList) SelectIndex(i int) {
	if i < 0 || i >= len(s.candidates) {
		s.cursor = CursorNone
		return
	}
	s.cursor = i
}

// Selected returns the candidate under the cursor, if any.
func (s *SuggestionList) Selected() (Product, bool) {
	if s.cursor == CursorNone || s.cursor >= len(s.candidates) {
		return Product{}, false
	}
	return s.candidates[s.cursor], true
}
