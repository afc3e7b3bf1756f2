package digits

// Set is a set of digit values. Radices never exceed 16, so one bit per
// digit value is enough.
type Set uint16

// NewSet returns the set of ds. Values of MaxRadix or more are ignored since
// no list can hold them.
func NewSet(ds ...Digit) Set {
	var s Set
	for _, d := range ds {
		s = s.Add(d)
	}

	return s
}

// Add returns s with d included.
func (s Set) Add(d Digit) Set {
	if d >= MaxRadix {
		return s
	}

	return s | 1<<d
}

// Has returns true if d is in s.
func (s Set) Has(d Digit) bool {
	return d < MaxRadix && s&(1<<d) != 0
}
