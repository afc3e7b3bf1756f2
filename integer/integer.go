// Package integer converts unsigned arbitrary precision integers to and from
// digit expansions in a radix.
package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the integer error class.
var Error = errs.Class("integer")

// Supported radix bounds. big.Int renders up to base 36 in lower case.
const (
	MinRadix = 2
	MaxRadix = 36
)

// Value returns the integer whose expansion in radix is ds, most significant
// digit first. An empty expansion is zero.
func Value(ds []byte, radix int) (x *big.Int, err error) {
	err = checkRadix(radix)
	if err != nil {
		return nil, err
	}

	var bigRadix, bd big.Int
	bigRadix.SetInt64(int64(radix))

	x = new(big.Int)
	for i, d := range ds {
		if int(d) >= radix {
			return nil, Error.New("digit %d at %d out of range for radix %d", d, i, radix)
		}

		bd.SetUint64(uint64(d))
		x.Mul(x, &bigRadix)
		x.Add(x, &bd)
	}

	return x, nil
}

// Digits returns the expansion of x in radix, most significant digit first.
//
// Note: zero has no digits. The result for zero is an empty slice, never a
// single zero digit, so an expansion never carries a leading zero.
func Digits(x *big.Int, radix int) (ds []byte, err error) {
	err = checkRadix(radix)
	if err != nil {
		return nil, err
	}

	if x == nil || x.Sign() == 0 {
		return []byte{}, nil
	}

	if x.Sign() < 0 {
		return nil, Error.New("negative value: %s", x)
	}

	text := x.Text(radix)

	ds = make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c <= '9' {
			ds[i] = c - '0'
		} else {
			ds[i] = c - 'a' + 10
		}
	}

	return ds, nil
}

// And returns the bitwise conjunction of a and b. A nil operand is zero.
func And(a, b *big.Int) *big.Int {
	if a == nil || b == nil {
		return new(big.Int)
	}

	return new(big.Int).And(a, b)
}

func checkRadix(radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return Error.New("radix %d not in [%d,%d]", radix, MinRadix, MaxRadix)
	}

	return nil
}
