// Package numeral treats a digit list as a non-negative integer.
//
// A Number is a digits.List read most significant digit first. Zero is the
// empty list. Numbers are imported from and exported to decimal text,
// converted between radices, and combined by bitwise conjunction. Derived
// numbers are always new; the operands are never modified.
package numeral

import (
	"math/big"

	"github.com/calebcase/digits/decimal"
	"github.com/calebcase/digits/digits"
	"github.com/calebcase/digits/integer"
)

// Number is a non-negative integer held as digits of a fixed radix.
type Number struct {
	*digits.List
}

// New returns zero in the given radix.
func New(radix int) (*Number, error) {
	l, err := digits.New(radix)
	if err != nil {
		return nil, err
	}

	return &Number{
		List: l,
	}, nil
}

// FromDecimal returns the number written as decimal text in the given radix.
// Text that is not unsigned decimal yields zero (an empty number); only an
// invalid radix is an error.
func FromDecimal(radix int, text string) (*Number, error) {
	n, err := New(radix)
	if err != nil {
		return nil, err
	}

	n.SetDecimal(text)

	return n, nil
}

// FromValue returns x in the given radix.
func FromValue(radix int, x *big.Int) (*Number, error) {
	n, err := New(radix)
	if err != nil {
		return nil, err
	}

	err = n.SetValue(x)
	if err != nil {
		return nil, err
	}

	return n, nil
}

// SetDecimal replaces the digits with the value of decimal text. It returns
// false, leaving the number empty, if the text is rejected.
func (n *Number) SetDecimal(text string) bool {
	n.Clear()

	x, err := decimal.Parse(text)
	if err != nil {
		return false
	}

	return n.SetValue(x) == nil
}

// SetValue replaces the digits with the expansion of x. The number is
// unchanged if x is negative.
func (n *Number) SetValue(x *big.Int) (err error) {
	ds, err := integer.Digits(x, n.Radix())
	if err != nil {
		return err
	}

	n.Clear()

	return n.AppendRange(ds)
}

// Value returns the integer the digits represent.
func (n *Number) Value() *big.Int {
	x, err := integer.Value(n.Digits(), n.Radix())
	if err != nil {
		// Every digit is checked against the radix on the way in.
		panic(err)
	}

	return x
}

// DecimalText returns the value as decimal text. Zero is "0".
func (n *Number) DecimalText() string {
	return decimal.Format(n.Value())
}

// DisplayText returns the digits in their own radix using 0-9 and A-F. Zero
// is the empty string.
func (n *Number) DisplayText() string {
	return n.String()
}

// Convert returns the same value in another radix.
func (n *Number) Convert(radix int) (*Number, error) {
	return FromValue(radix, n.Value())
}

// And returns the bitwise conjunction of n and o in n's radix. Each operand
// is read in its own radix. A zero operand or a zero result is the empty
// number.
func (n *Number) And(o *Number) *Number {
	r := n.zero()

	if n.IsEmpty() || o == nil || o.IsEmpty() {
		return r
	}

	x := integer.And(n.Value(), o.Value())
	if x.Sign() <= 0 {
		return r
	}

	err := r.SetValue(x)
	if err != nil {
		panic(err)
	}

	return r
}

// zero returns an empty number with the radix of n.
func (n *Number) zero() *Number {
	r, err := New(n.Radix())
	if err != nil {
		panic(err)
	}

	return r
}

// Clone returns an independent copy of n.
func (n *Number) Clone() *Number {
	return &Number{
		List: n.List.Clone(),
	}
}

// Equal returns true if both numbers hold the same digits in the same order,
// regardless of radix.
func (n *Number) Equal(o *Number) bool {
	if n == nil || o == nil {
		return n == o
	}

	return n.List.Equal(o.List)
}

// Cmp compares the values of n and o and returns -1, 0 or +1.
func (n *Number) Cmp(o *Number) int {
	return n.Value().Cmp(o.Value())
}
