package register

import (
	"math"
	"strconv"
	"strings"
)

// minQuantity is the floor every quantity is clamped up to.
const minQuantity = 0.01

// Quantity is a line quantity that is either a whole number of units or
// a value rounded to two decimals. Arithmetic on it preserves which of
// the two forms it currently has, so that "3" plus one stays "4" while
// "2.50" plus one stays "3.50".
type Quantity struct {
	value float64
	whole bool
}

// One is the quantity a freshly added line starts with.
func One() Quantity {
	return Quantity{value: 1, whole: true}
}

// ParseQuantity parses raw user input. The value is clamped up to 0.01;
// inputs without a fractional part become whole quantities, everything
// else is rounded to two decimals.
func ParseQuantity(raw string) (Quantity, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Quantity{}, err
	}
	// ParseFloat happily returns "nan" and "inf"; a quantity must stay
	// a real number or the line totals go with it.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Quantity{}, strconv.ErrSyntax
	}
	if v == math.Trunc(v) {
		if v < minQuantity {
			return Quantity{value: minQuantity, whole: false}, nil
		}
		return Quantity{value: v, whole: true}, nil
	}
	v = round2(v)
	if v < minQuantity {
		v = minQuantity
	}
	// rounding can land back on a whole number, e.g. "2.001"
	if v == math.Trunc(v) {
		return Quantity{value: v, whole: true}, nil
	}
	return Quantity{value: v, whole: false}, nil
}

// Value returns the numeric quantity.
func (q Quantity) Value() float64 {
	return q.value
}

// IsWhole reports whether the quantity is in integer form.
func (q Quantity) IsWhole() bool {
	return q.whole
}

// Increment adds one unit, keeping the current representation.
func (q Quantity) Increment() Quantity {
	if q.whole {
		return Quantity{value: q.value + 1, whole: true}
	}
	return Quantity{value: round2(q.value + 1), whole: false}
}

// String renders the display form: whole quantities bare, decimal
// quantities with trailing zeros trimmed ("2.50" shows as "2.5").
func (q Quantity) String() string {
	if q.whole {
		return strconv.FormatInt(int64(q.value), 10)
	}
	v := round2(q.value)
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
