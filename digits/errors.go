package digits

import "github.com/zeebo/errs"

// Error classes for invalid arguments. They are returned at the offending
// call and never deferred.
var (
	// RangeError is a digit value outside [0, radix).
	RangeError = errs.Class("digit out of range")

	// IndexError is an index outside the bound of the requested operation.
	IndexError = errs.Class("index out of range")

	// RadixError is a radix outside [MinRadix, MaxRadix].
	RadixError = errs.Class("invalid radix")
)
