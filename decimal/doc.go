// Package decimal reads and writes unsigned base 10 integer text.
//
// Accepted text is one or more ASCII digits:
//
//  text = digit { digit }
//  digit = "0" | "1" | "2" | "3" | "4" | "5" | "6" | "7" | "8" | "9"
//
// There is no sign, no separator, no surrounding whitespace and no radix
// prefix. Leading zeros are accepted on input ("007" is 7) and never produced
// on output. Zero is written as "0".
//
// Text that does not match is rejected with an error in the Error class. The
// caller decides what rejection means; the numeral package turns it into an
// empty number.
package decimal
