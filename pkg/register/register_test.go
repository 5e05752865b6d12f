package register

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestRegister() *Register {
	return NewRegister(testCatalog())
}

func TestAddAccumulatesIntoOneLine(t *testing.T) {
	r := newTestRegister()

	for i := 0; i < 3; i++ {
		res, err := r.AddToActiveLedger("Rice")
		assert.NoError(t, err)
		assert.NotNil(t, res)
	}

	st := r.Snapshot()
	assert.Equal(t, 1, st.Left.ItemCount, "re-adding increments, never duplicates")
	assert.Equal(t, "3", st.Left.Lines[0].Qty)
	assert.Equal(t, "Chawal", st.Left.Lines[0].DisplayName)
}

func TestAddUnknownProduct(t *testing.T) {
	r := newTestRegister()
	r.SearchInput(PaneLeft, "ric")

	res, err := r.AddToActiveLedger("ric")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, res)

	st := r.Snapshot()
	assert.Equal(t, 0, st.Left.ItemCount, "ledger unchanged on NotFound")
	assert.Equal(t, "", st.Query, "search text is cleared")
}

func TestAddOpensQuantityEdit(t *testing.T) {
	r := newTestRegister()

	res, err := r.AddToActiveLedger("Sugar")
	assert.NoError(t, err)
	assert.Equal(t, FieldQuantity, res.Edit.Field)
	assert.Equal(t, int64(3), res.Edit.ProductID)
	assert.Equal(t, "1", res.Edit.Original)

	edit := r.Edit()
	assert.NotNil(t, edit, "auto-edit-on-add is mandatory")
	assert.Equal(t, FieldQuantity, edit.Field)
}

func TestActiveContextRouting(t *testing.T) {
	r := newTestRegister()
	assert.Equal(t, PaneLeft, r.ActivePane(), "left pane is active at startup")

	r.Focus(PaneRight)
	_, err := r.AddToActiveLedger("Rice")
	assert.NoError(t, err)

	st := r.Snapshot()
	assert.Equal(t, 0, st.Left.ItemCount)
	assert.Equal(t, 1, st.Right.ItemCount)
}

func TestSuggestMoveCursorKeepsActivePane(t *testing.T) {
	r := newTestRegister()
	r.Focus(PaneRight)

	r.SuggestMoveCursor(CursorDown)
	assert.Equal(t, PaneRight, r.ActivePane())

	r.SearchMoveCursor(PaneLeft, CursorDown)
	assert.Equal(t, PaneLeft, r.ActivePane(), "search-field keys do take the active context")
}

func TestSearchSubmit(t *testing.T) {
	t.Run("literal text with no cursor", func(t *testing.T) {
		r := newTestRegister()
		res, err := r.SearchSubmit(PaneLeft, "rice")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), res.Line.ProductID)
	})

	t.Run("cursor selection wins over typed text", func(t *testing.T) {
		r := newTestRegister()
		// "ri" filters to [Basmati Rice, Rice]; cursor lands on the first
		r.SearchInput(PaneLeft, "ri")
		r.SearchMoveCursor(PaneLeft, CursorDown)
		res, err := r.SearchSubmit(PaneLeft, "ri")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), res.Line.ProductID)
	})

	t.Run("empty submit is a no-op", func(t *testing.T) {
		r := newTestRegister()
		res, err := r.SearchSubmit(PaneLeft, "   ")
		assert.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestSuggestSubmit(t *testing.T) {
	t.Run("no candidates is a no-op", func(t *testing.T) {
		r := newTestRegister()
		r.SearchInput(PaneLeft, "zzz")
		res, err := r.SuggestSubmit()
		assert.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("no cursor takes the first candidate", func(t *testing.T) {
		r := newTestRegister()
		r.SearchInput(PaneLeft, "sugar")
		res, err := r.SuggestSubmit()
		assert.NoError(t, err)
		assert.Equal(t, int64(3), res.Line.ProductID)
	})

	t.Run("adds into whichever pane is active", func(t *testing.T) {
		r := newTestRegister()
		r.Focus(PaneRight)
		r.SuggestMoveCursor(CursorDown)
		res, err := r.SuggestSubmit()
		assert.NoError(t, err)
		assert.Equal(t, PaneRight, res.Pane)
	})
}

func TestActivateSuggestionEqualsNavigateThenCommit(t *testing.T) {
	a := newTestRegister()
	a.SearchInput(PaneLeft, "ri")
	resA, err := a.ActivateSuggestion(1)
	assert.NoError(t, err)

	b := newTestRegister()
	b.SearchInput(PaneLeft, "ri")
	b.SuggestMoveCursor(CursorDown)
	b.SuggestMoveCursor(CursorDown)
	resB, err := b.SuggestSubmit()
	assert.NoError(t, err)

	assert.Equal(t, resA.Line.ProductID, resB.Line.ProductID)
}

func TestEditChainQuantityThenPrice(t *testing.T) {
	r := newTestRegister()
	_, err := r.AddToActiveLedger("Rice")
	assert.NoError(t, err)

	out, err := r.CommitEdit("2")
	assert.NoError(t, err)
	assert.True(t, out.Committed)
	assert.NotNil(t, out.Next, "quantity commit chains into a price edit")
	assert.Equal(t, FieldPrice, out.Next.Field)
	assert.Equal(t, int64(1), out.Next.ProductID)

	assert.Equal(t, "2", r.Snapshot().Left.Lines[0].Qty)

	out, err = r.CommitEdit("15.5")
	assert.NoError(t, err)
	assert.True(t, out.Committed)
	assert.Nil(t, out.Next)
	assert.Equal(t, PaneLeft, out.FocusPane, "focus returns to the owning pane's search field")
	assert.Equal(t, "15.50", r.Snapshot().Left.Lines[0].UnitPrice)
	assert.Nil(t, r.Edit())
}

func TestEditCommitFocusesOwningPaneNotActive(t *testing.T) {
	r := newTestRegister()
	_, err := r.AddToActiveLedger("Rice") // left pane line
	assert.NoError(t, err)

	r.Focus(PaneRight) // user wanders off
	out, err := r.CommitEdit("2")
	assert.NoError(t, err)
	out, err = r.CommitEdit("12")
	assert.NoError(t, err)
	assert.Equal(t, PaneLeft, out.FocusPane)
}

func TestCrossPaneEditAbandonment(t *testing.T) {
	r := newTestRegister()
	_, err := r.AddToActiveLedger("Rice")
	assert.NoError(t, err)

	// pane B: open a session while pane A's quantity edit is live
	r.Focus(PaneRight)
	_, err = r.AddToActiveLedger("Sugar")
	assert.NoError(t, err)

	edit := r.Edit()
	assert.Equal(t, PaneRight, edit.Pane, "only one session process-wide")

	// pane A's typed-but-uncommitted text was never written
	st := r.Snapshot()
	assert.Equal(t, "1", st.Left.Lines[0].Qty)
}

func TestInvalidEditInputIsSilentCancel(t *testing.T) {
	r := newTestRegister()
	_, err := r.AddToActiveLedger("Rice")
	assert.NoError(t, err)

	out, err := r.CommitEdit("abc")
	assert.NoError(t, err, "invalid numeric input never surfaces as an error")
	assert.False(t, out.Committed)
	assert.Nil(t, out.Next, "no chaining on a discarded edit")
	assert.Nil(t, r.Edit())
	assert.Equal(t, "1", r.Snapshot().Left.Lines[0].Qty)
}

func TestNonFiniteEditInputIsSilentCancel(t *testing.T) {
	r := newTestRegister()
	_, err := r.AddToActiveLedger("Rice")
	assert.NoError(t, err)

	// "nan" parses as a float but must never reach a line
	out, err := r.CommitEdit("nan")
	assert.NoError(t, err)
	assert.False(t, out.Committed)
	assert.Nil(t, r.Edit())
	st := r.Snapshot()
	assert.Equal(t, "1", st.Left.Lines[0].Qty)
	assert.Equal(t, int64(10), st.Left.GrandTotal)

	// same for a price commit
	_, err = r.BeginEdit(PaneLeft, st.Left.Lines[0].ProductID, FieldPrice)
	assert.NoError(t, err)
	out, err = r.CommitEdit("inf")
	assert.NoError(t, err)
	assert.False(t, out.Committed)
	assert.Equal(t, "10.00", r.Snapshot().Left.Lines[0].UnitPrice)
}

func TestCommitWithoutSession(t *testing.T) {
	r := newTestRegister()
	_, err := r.CommitEdit("2")
	assert.ErrorIs(t, err, ErrNoEditSession)
}

func TestQuantityClampAndRepresentationOnCommit(t *testing.T) {
	r := newTestRegister()
	_, err := r.AddToActiveLedger("Rice")
	assert.NoError(t, err)

	out, err := r.CommitEdit("0")
	assert.NoError(t, err)
	assert.True(t, out.Committed)
	assert.Equal(t, "0.01", r.Snapshot().Left.Lines[0].Qty)

	_, err = r.CommitEdit("-3") // price clamps up to zero
	assert.NoError(t, err)
	assert.Equal(t, "0.00", r.Snapshot().Left.Lines[0].UnitPrice)
}

func TestClearAbandonsEditSession(t *testing.T) {
	r := newTestRegister()
	_, err := r.AddToActiveLedger("Rice")
	assert.NoError(t, err)
	r.SetCustomerName(PaneLeft, "Ramesh")

	r.Clear(PaneLeft)
	assert.Nil(t, r.Edit(), "no dangling session after clear")

	st := r.Snapshot()
	assert.Equal(t, 0, st.Left.ItemCount)
	assert.Equal(t, "", st.Left.CustomerName)

	// a later begin behaves as if no session ever existed
	_, err = r.AddToActiveLedger("Rice")
	assert.NoError(t, err)
	assert.Equal(t, FieldQuantity, r.Edit().Field)
}

func TestClearOnePaneKeepsOtherPaneSession(t *testing.T) {
	r := newTestRegister()
	r.Focus(PaneRight)
	_, err := r.AddToActiveLedger("Sugar")
	assert.NoError(t, err)

	r.Clear(PaneLeft)
	assert.NotNil(t, r.Edit(), "clearing the other pane leaves the session alone")
}

func TestRemoveLine(t *testing.T) {
	r := newTestRegister()
	_, err := r.AddToActiveLedger("Rice")
	assert.NoError(t, err)
	_, err = r.AddToActiveLedger("Sugar")
	assert.NoError(t, err)

	r.RemoveLine(PaneLeft, 3)
	st := r.Snapshot()
	assert.Equal(t, 1, st.Left.ItemCount)
	assert.Nil(t, r.Edit(), "removing the edited line abandons its session")

	// removing an absent line is idempotent
	r.RemoveLine(PaneLeft, 999)
	assert.Equal(t, 1, r.Snapshot().Left.ItemCount)
}

func TestInsertionOrderPreserved(t *testing.T) {
	r := newTestRegister()
	for _, name := range []string{"Sugar", "Rice", "Curry Leaves", "Rice"} {
		_, err := r.AddToActiveLedger(name)
		assert.NoError(t, err)
	}

	lines := r.Snapshot().Left.Lines
	assert.Equal(t, []string{"Shakkar", "Chawal", "Kadi Patta"},
		[]string{lines[0].DisplayName, lines[1].DisplayName, lines[2].DisplayName})
}

func TestBuildReceipt(t *testing.T) {
	r := newTestRegister()
	_, err := r.AddToActiveLedger("Rice")
	assert.NoError(t, err)
	_, err = r.CommitEdit("3")       // qty
	assert.NoError(t, err)
	_, err = r.CommitEdit("3.33")    // price
	assert.NoError(t, err)
	r.SetCustomerName(PaneLeft, "Suresh")

	now := time.Date(2025, 11, 2, 18, 30, 0, 0, time.UTC)
	doc := r.BuildReceipt(PaneLeft, now)

	assert.Equal(t, "Suresh", doc.CustomerName)
	assert.Equal(t, 1, doc.ItemCount)
	assert.Equal(t, int64(10), doc.GrandTotal) // ceil(3.33*3) = 10
	assert.Equal(t, now, doc.Timestamp)
	assert.Equal(t, ReceiptLine{
		DisplayName: "Chawal",
		Qty:         "3",
		UnitPrice:   "3.33",
		LineTotal:   10,
	}, doc.Lines[0])

	// printing never clears the ledger
	assert.Equal(t, 1, r.Snapshot().Left.ItemCount)
}
