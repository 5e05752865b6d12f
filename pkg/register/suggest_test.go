package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func threeCandidateList() *SuggestionList {
	c := NewCatalog()
	c.Replace([]Product{
		{ID: 1, NameEn: "Rice"},
		{ID: 2, NameEn: "Salt"},
		{ID: 3, NameEn: "Sugar"},
	})
	return newSuggestionList(c)
}

func TestCursorRingDown(t *testing.T) {
	s := threeCandidateList()
	assert.Equal(t, CursorNone, s.Cursor())

	want := []int{0, 1, 2, 0} // wraps, never clamps
	for _, idx := range want {
		s.MoveCursor(CursorDown)
		assert.Equal(t, idx, s.Cursor())
	}
}

func TestCursorRingUp(t *testing.T) {
	s := threeCandidateList()

	s.MoveCursor(CursorUp)
	assert.Equal(t, 2, s.Cursor(), "Up from none lands on the last index")
	s.MoveCursor(CursorUp)
	assert.Equal(t, 1, s.Cursor())
	s.MoveCursor(CursorUp)
	assert.Equal(t, 0, s.Cursor())
	s.MoveCursor(CursorUp)
	assert.Equal(t, 2, s.Cursor())
}

func TestCursorEmptyListNoop(t *testing.T) {
	s := threeCandidateList()
	s.SetQuery("xyz")
	assert.Empty(t, s.Candidates())

	s.MoveCursor(CursorDown)
	assert.Equal(t, CursorNone, s.Cursor())
	s.MoveCursor(CursorUp)
	assert.Equal(t, CursorNone, s.Cursor())
}

func TestSetQueryResetsCursor(t *testing.T) {
	s := threeCandidateList()
	s.MoveCursor(CursorDown)
	s.MoveCursor(CursorDown)
	assert.Equal(t, 1, s.Cursor())

	s.SetQuery("s")
	assert.Equal(t, CursorNone, s.Cursor(), "cursor is relative to the current candidates only")
	assert.Len(t, s.Candidates(), 2) // Salt, Sugar
}

func TestSelected(t *testing.T) {
	s := threeCandidateList()

	_, ok := s.Selected()
	assert.False(t, ok)

	s.MoveCursor(CursorDown)
	p, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "Rice", p.NameEn)

	s.SelectIndex(2)
	p, _ = s.Selected()
	assert.Equal(t, "Sugar", p.NameEn)

	s.SelectIndex(99)
	_, ok = s.Selected()
	assert.False(t, ok)
}
