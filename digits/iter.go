package digits

// Iterator walks a list from head to tail.
//
//  it := l.Iter()
//  for it.Next() {
//  	d := it.Digit()
//  }
type Iterator struct {
	l     *List
	next  handle
	digit Digit
}

// Iter returns a new iterator positioned before the first digit.
func (l *List) Iter() *Iterator {
	return &Iterator{
		l:    l,
		next: l.head,
	}
}

// Next advances to the next digit. It returns false when no digits remain.
func (it *Iterator) Next() (ok bool) {
	if it.next == null {
		return false
	}

	n := it.l.nodes.at(it.next)
	it.digit = n.digit
	it.next = n.next

	return true
}

// Digit returns the current digit.
func (it *Iterator) Digit() Digit {
	return it.digit
}
