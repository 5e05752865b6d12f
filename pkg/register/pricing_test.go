package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustQty(t *testing.T, raw string) Quantity {
	t.Helper()
	q, err := ParseQuantity(raw)
	assert.NoError(t, err)
	return q
}

func TestLineTotalCeils(t *testing.T) {
	assert.Equal(t, int64(10), LineTotal(10.00, mustQty(t, "1")))
	// 3.33 * 3 = 9.99 -> ceil -> 10
	assert.Equal(t, int64(10), LineTotal(3.33, mustQty(t, "3")))
	assert.Equal(t, int64(6), LineTotal(5.5, mustQty(t, "1")))
}

func TestGrandTotalTwoStageRounding(t *testing.T) {
	lines := []*Line{
		{UnitPrice: 10.00, Qty: mustQty(t, "1")},
		{UnitPrice: 3.33, Qty: mustQty(t, "3")},
	}
	// round(ceil(10.00*1) + ceil(3.33*3)) = round(10 + 10) = 20,
	// NOT round(10.00 + 9.99) = 20 by accident of this data but the
	// per-line ceiling must happen before the sum.
	assert.Equal(t, int64(20), GrandTotal(lines))

	single := []*Line{{UnitPrice: 0.40, Qty: mustQty(t, "1")}}
	// collapsing the stages would give round(0.40) = 0
	assert.Equal(t, int64(1), GrandTotal(single))
}

func TestGrandTotalEmpty(t *testing.T) {
	assert.Equal(t, int64(0), GrandTotal(nil))
}

func TestQuantityParsing(t *testing.T) {
	t.Run("integral input stays whole", func(t *testing.T) {
		q := mustQty(t, "2")
		assert.True(t, q.IsWhole())
		assert.Equal(t, 2.0, q.Value())
		assert.Equal(t, "2", q.String())
	})

	t.Run("decimal input rounds to two places", func(t *testing.T) {
		q := mustQty(t, "2.499")
		assert.False(t, q.IsWhole())
		assert.Equal(t, 2.5, q.Value())
		assert.Equal(t, "2.5", q.String())
	})

	t.Run("clamped up to 0.01", func(t *testing.T) {
		assert.Equal(t, 0.01, mustQty(t, "0").Value())
		assert.Equal(t, 0.01, mustQty(t, "-4").Value())
		assert.Equal(t, 0.01, mustQty(t, "0.001").Value())
	})

	t.Run("garbage is an error", func(t *testing.T) {
		_, err := ParseQuantity("2x")
		assert.Error(t, err)
		_, err = ParseQuantity("")
		assert.Error(t, err)
	})

	t.Run("non-finite input is an error", func(t *testing.T) {
		// ParseFloat accepts these; a quantity must not
		for _, raw := range []string{"nan", "NaN", "inf", "+Inf", "-inf"} {
			_, err := ParseQuantity(raw)
			assert.Error(t, err, raw)
		}
	})
}

func TestQuantityIncrementKeepsRepresentation(t *testing.T) {
	whole := mustQty(t, "3").Increment()
	assert.True(t, whole.IsWhole())
	assert.Equal(t, 4.0, whole.Value())

	dec := mustQty(t, "2.50").Increment()
	assert.False(t, dec.IsWhole())
	assert.Equal(t, 3.5, dec.Value())
	assert.Equal(t, "3.5", dec.String())
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "15.50", FormatPrice(15.5))
	assert.Equal(t, "0.00", FormatPrice(0))
	assert.Equal(t, "2", FormatQty(mustQty(t, "2.00")))
	assert.Equal(t, "2.25", FormatQty(mustQty(t, "2.25")))
}
