// Package digits provides an ordered sequence of single-radix digits.
//
// A List holds digits of one fixed radix between 2 and 16. Index 0 is the
// most significant digit. Every mutator rejects digits outside [0, radix)
// with a RangeError and positions outside the list with an IndexError, so a
// List never holds a digit its radix cannot express.
//
// Storage
//
// The list is doubly linked, but nodes are not individually allocated. They
// live in a per-list arena and link to each other by integer handle:
//
//  head                                     tail
//   |                                        |
//  [0]<->[3]<->[1]<->[2]    nodes: 0 1 2 3 4 (4 is free)
//
// Unlinking a node puts its slot on a free list that the next insertion
// reuses. Splicing and unlinking are constant time. Indexed access walks from
// whichever end is nearer, so it costs at most half the list.
//
// Ordering
//
// Sorting and swapping exchange digit values between nodes and never relink
// them. Shifting rotates the list by one position by moving the head node to
// the tail (ShiftLeft) or the tail node to the head (ShiftRight).
//
// A List is not safe for concurrent use. An Iterator is invalidated by any
// insertion or removal on the list it iterates.
package digits
