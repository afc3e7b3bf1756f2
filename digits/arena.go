package digits

// handle addresses a node in the arena. null marks the absence of a node.
type handle int32

const null handle = -1

type node struct {
	digit Digit
	prev  handle
	next  handle
}

// arena stores the nodes of a single list contiguously. Released nodes are
// chained through next into a free list and reused before the slice grows.
//
// Pointers returned by at are only valid until the next alloc.
type arena struct {
	nodes []node
	free  handle
}

func newArena() arena {
	return arena{
		free: null,
	}
}

func (a *arena) alloc(d Digit) handle {
	if a.free != null {
		h := a.free
		a.free = a.nodes[h].next
		a.nodes[h] = node{digit: d, prev: null, next: null}

		return h
	}

	a.nodes = append(a.nodes, node{digit: d, prev: null, next: null})

	return handle(len(a.nodes) - 1)
}

func (a *arena) release(h handle) {
	a.nodes[h] = node{prev: null, next: a.free}
	a.free = h
}

func (a *arena) at(h handle) *node {
	return &a.nodes[h]
}

func (a *arena) reset() {
	a.nodes = a.nodes[:0]
	a.free = null
}
