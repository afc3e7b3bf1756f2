package digits

// Swap exchanges the digits at i and j. It returns false, leaving the list
// unchanged, if either index is out of range.
func (l *List) Swap(i, j int) bool {
	if !l.inRange(i) || !l.inRange(j) {
		return false
	}

	if i == j {
		return true
	}

	a, b := l.nodes.at(l.nodeAt(i)), l.nodes.at(l.nodeAt(j))
	a.digit, b.digit = b.digit, a.digit

	return true
}

// SortAscending orders the digits from smallest to largest.
func (l *List) SortAscending() {
	l.selectionSort(func(a, b Digit) bool {
		return a < b
	})
}

// SortDescending orders the digits from largest to smallest.
func (l *List) SortDescending() {
	l.selectionSort(func(a, b Digit) bool {
		return a > b
	})
}

// selectionSort moves the first extremal remaining digit into each position
// in turn. Only values move; nodes keep their links.
func (l *List) selectionSort(better func(a, b Digit) bool) {
	if l.size < 2 {
		return
	}

	for h := l.head; h != l.tail; h = l.nodes.at(h).next {
		best := h
		for c := l.nodes.at(h).next; c != null; c = l.nodes.at(c).next {
			if better(l.nodes.at(c).digit, l.nodes.at(best).digit) {
				best = c
			}
		}

		if best != h {
			a, b := l.nodes.at(h), l.nodes.at(best)
			a.digit, b.digit = b.digit, a.digit
		}
	}
}

// ShiftLeft moves the first digit to the end.
func (l *List) ShiftLeft() {
	if l.size <= 1 {
		return
	}

	h := l.head
	first := l.nodes.at(h)

	l.head = first.next
	l.nodes.at(l.head).prev = null

	first.next = null
	first.prev = l.tail
	l.nodes.at(l.tail).next = h
	l.tail = h
}

// ShiftRight moves the last digit to the front.
func (l *List) ShiftRight() {
	if l.size <= 1 {
		return
	}

	h := l.tail
	last := l.nodes.at(h)

	l.tail = last.prev
	l.nodes.at(l.tail).next = null

	last.prev = null
	last.next = l.head
	l.nodes.at(l.head).prev = h
	l.head = h
}
