package decimal

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the decimal error class.
var Error = errs.Class("decimal")

// Valid returns true if text is unsigned decimal text.
func Valid(text string) bool {
	return check(text) == nil
}

// Parse returns the value of unsigned decimal text.
func Parse(text string) (x *big.Int, err error) {
	err = check(text)
	if err != nil {
		return nil, err
	}

	x, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, Error.New("invalid text: %q", text)
	}

	return x, nil
}

// Format returns x as decimal text. A nil x is zero.
func Format(x *big.Int) string {
	if x == nil {
		return "0"
	}

	return x.Text(10)
}

func check(text string) error {
	if len(text) == 0 {
		return Error.New("empty text")
	}

	if text[0] == '-' {
		return Error.New("negative: %q", text)
	}

	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return Error.New("invalid character %q at %d: %q", text[i], i, text)
		}
	}

	return nil
}
