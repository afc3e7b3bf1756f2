package digits

import (
	"strings"
)

// Digit is a single digit value.
type Digit = byte

// Supported radix bounds.
const (
	MinRadix = 2
	MaxRadix = 16
)

const alphabet = "0123456789ABCDEF"

// List is an ordered sequence of digits in a fixed radix.
type List struct {
	radix int

	nodes arena
	head  handle
	tail  handle
	size  int
}

// New returns an empty list of the given radix.
func New(radix int) (*List, error) {
	if radix < MinRadix || radix > MaxRadix {
		return nil, RadixError.New("%d not in [%d,%d]", radix, MinRadix, MaxRadix)
	}

	return &List{
		radix: radix,
		nodes: newArena(),
		head:  null,
		tail:  null,
	}, nil
}

// Radix returns the radix of the list.
func (l *List) Radix() int {
	return l.radix
}

// Len returns the number of digits.
func (l *List) Len() int {
	return l.size
}

// IsEmpty returns true if the list has no digits.
func (l *List) IsEmpty() bool {
	return l.size == 0
}

// Get returns the digit at index i.
func (l *List) Get(i int) (d Digit, err error) {
	err = l.checkElement(i)
	if err != nil {
		return 0, err
	}

	return l.nodes.at(l.nodeAt(i)).digit, nil
}

// Set replaces the digit at index i and returns the previous digit.
func (l *List) Set(i int, d Digit) (old Digit, err error) {
	err = l.checkElement(i)
	if err != nil {
		return 0, err
	}

	err = l.checkDigit(d)
	if err != nil {
		return 0, err
	}

	n := l.nodes.at(l.nodeAt(i))
	old, n.digit = n.digit, d

	return old, nil
}

// Insert places d at index i, shifting the digits at and after i one
// position to the right. Inserting at Len() appends.
func (l *List) Insert(i int, d Digit) (err error) {
	return l.InsertRange(i, []Digit{d})
}

// InsertRange places ds at index i in order. Either all of ds is inserted or,
// if the index or any digit is invalid, the list is left unchanged.
func (l *List) InsertRange(i int, ds []Digit) (err error) {
	err = l.checkPosition(i)
	if err != nil {
		return err
	}

	for _, d := range ds {
		err = l.checkDigit(d)
		if err != nil {
			return err
		}
	}

	next := null
	if i < l.size {
		next = l.nodeAt(i)
	}

	for _, d := range ds {
		l.linkBefore(next, d)
	}

	return nil
}

// Append adds d after the last digit.
func (l *List) Append(d Digit) (err error) {
	err = l.checkDigit(d)
	if err != nil {
		return err
	}

	l.linkBefore(null, d)

	return nil
}

// AppendRange adds ds after the last digit. It is atomic like InsertRange.
func (l *List) AppendRange(ds []Digit) (err error) {
	return l.InsertRange(l.size, ds)
}

// Remove deletes the digit at index i and returns it.
func (l *List) Remove(i int) (d Digit, err error) {
	err = l.checkElement(i)
	if err != nil {
		return 0, err
	}

	return l.unlink(l.nodeAt(i)), nil
}

// RemoveFirst deletes the first occurrence of d. It returns false if d is not
// present.
func (l *List) RemoveFirst(d Digit) bool {
	for h := l.head; h != null; h = l.nodes.at(h).next {
		if l.nodes.at(h).digit == d {
			l.unlink(h)

			return true
		}
	}

	return false
}

// RemoveAll deletes every digit in s. It returns true if the list changed.
func (l *List) RemoveAll(s Set) bool {
	return l.removeIf(s.Has)
}

// RetainAll deletes every digit not in s. It returns true if the list
// changed.
func (l *List) RetainAll(s Set) bool {
	return l.removeIf(func(d Digit) bool {
		return !s.Has(d)
	})
}

// Clear removes all digits.
func (l *List) Clear() {
	l.nodes.reset()
	l.head = null
	l.tail = null
	l.size = 0
}

// Contains returns true if d is in the list.
func (l *List) Contains(d Digit) bool {
	return l.Index(d) >= 0
}

// ContainsAll returns true if every one of ds is in the list.
func (l *List) ContainsAll(ds ...Digit) bool {
	var present Set
	for h := l.head; h != null; h = l.nodes.at(h).next {
		present = present.Add(l.nodes.at(h).digit)
	}

	for _, d := range ds {
		if !present.Has(d) {
			return false
		}
	}

	return true
}

// Index returns the index of the first occurrence of d or -1.
func (l *List) Index(d Digit) int {
	i := 0
	for h := l.head; h != null; h = l.nodes.at(h).next {
		if l.nodes.at(h).digit == d {
			return i
		}
		i++
	}

	return -1
}

// LastIndex returns the index of the last occurrence of d or -1.
func (l *List) LastIndex(d Digit) int {
	i := l.size - 1
	for h := l.tail; h != null; h = l.nodes.at(h).prev {
		if l.nodes.at(h).digit == d {
			return i
		}
		i--
	}

	return -1
}

// Digits returns a copy of the digits in order.
func (l *List) Digits() []Digit {
	ds := make([]Digit, 0, l.size)
	for h := l.head; h != null; h = l.nodes.at(h).next {
		ds = append(ds, l.nodes.at(h).digit)
	}

	return ds
}

// Clone returns an independent copy of the list with the same radix.
func (l *List) Clone() *List {
	c := &List{
		radix: l.radix,
		nodes: newArena(),
		head:  null,
		tail:  null,
	}

	for h := l.head; h != null; h = l.nodes.at(h).next {
		c.linkBefore(null, l.nodes.at(h).digit)
	}

	return c
}

// Equal returns true if both lists hold the same digits in the same order.
// The radix is not compared.
func (l *List) Equal(o *List) bool {
	if l == nil || o == nil {
		return l == o
	}

	if l.size != o.size {
		return false
	}

	for a, b := l.head, o.head; a != null; a, b = l.nodes.at(a).next, o.nodes.at(b).next {
		if l.nodes.at(a).digit != o.nodes.at(b).digit {
			return false
		}
	}

	return true
}

// String renders each digit with 0-9 then A-F. An empty list renders as the
// empty string.
func (l *List) String() string {
	var sb strings.Builder
	sb.Grow(l.size)

	for h := l.head; h != null; h = l.nodes.at(h).next {
		sb.WriteByte(alphabet[l.nodes.at(h).digit])
	}

	return sb.String()
}

func (l *List) checkDigit(d Digit) error {
	if int(d) >= l.radix {
		return RangeError.New("digit %d not in [0,%d)", d, l.radix)
	}

	return nil
}

func (l *List) inRange(i int) bool {
	return i >= 0 && i < l.size
}

func (l *List) checkElement(i int) error {
	if !l.inRange(i) {
		return IndexError.New("index %d not in [0,%d)", i, l.size)
	}

	return nil
}

func (l *List) checkPosition(i int) error {
	if i < 0 || i > l.size {
		return IndexError.New("position %d not in [0,%d]", i, l.size)
	}

	return nil
}

// nodeAt returns the node at index i, walking from the nearer end. The index
// must already be checked.
func (l *List) nodeAt(i int) handle {
	if i < l.size/2 {
		h := l.head
		for ; i > 0; i-- {
			h = l.nodes.at(h).next
		}

		return h
	}

	h := l.tail
	for j := l.size - 1; j > i; j-- {
		h = l.nodes.at(h).prev
	}

	return h
}

// linkBefore inserts a node holding d before next. A null next appends.
func (l *List) linkBefore(next handle, d Digit) handle {
	h := l.nodes.alloc(d)
	n := l.nodes.at(h)

	if next == null {
		n.prev = l.tail
		if l.tail == null {
			l.head = h
		} else {
			l.nodes.at(l.tail).next = h
		}
		l.tail = h
	} else {
		nn := l.nodes.at(next)
		n.prev = nn.prev
		n.next = next
		if nn.prev == null {
			l.head = h
		} else {
			l.nodes.at(nn.prev).next = h
		}
		nn.prev = h
	}

	l.size++

	return h
}

func (l *List) unlink(h handle) Digit {
	n := l.nodes.at(h)
	d, prev, next := n.digit, n.prev, n.next

	if prev == null {
		l.head = next
	} else {
		l.nodes.at(prev).next = next
	}

	if next == null {
		l.tail = prev
	} else {
		l.nodes.at(next).prev = prev
	}

	l.nodes.release(h)
	l.size--

	return d
}

func (l *List) removeIf(match func(Digit) bool) (modified bool) {
	h := l.head
	for h != null {
		next := l.nodes.at(h).next
		if match(l.nodes.at(h).digit) {
			l.unlink(h)
			modified = true
		}
		h = next
	}

	return modified
}
