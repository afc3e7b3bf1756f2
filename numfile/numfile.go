// Package numfile stores a number as a single line of decimal text.
//
// Loading is best effort: a missing, empty, unreadable or malformed source
// yields an empty number (zero) rather than an error. Saving is best effort
// too; Save drops write failures, Write reports them.
package numfile

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/digits/numeral"
)

// Error is the numfile error class.
var Error = errs.Class("numfile")

// Read imports the first line of r as decimal text in the given radix.
// Surrounding whitespace is trimmed. Only an invalid radix is an error.
func Read(r io.Reader, radix int) (n *numeral.Number, err error) {
	n, err = numeral.New(radix)
	if err != nil {
		return nil, err
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return n, nil
	}

	n.SetDecimal(strings.TrimSpace(line))

	return n, nil
}

// Load imports the file at path. See Read.
func Load(path string, radix int) (n *numeral.Number, err error) {
	f, err := os.Open(path)
	if err != nil {
		return numeral.New(radix)
	}
	defer func() { _ = f.Close() }()

	return Read(f, radix)
}

// Write writes n as one line of decimal text.
func Write(w io.Writer, n *numeral.Number) (err error) {
	defer Error.WrapP(&err)

	_, err = io.WriteString(w, n.DecimalText()+"\n")
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// Save replaces the file at path with n. Failures are dropped.
func Save(path string, n *numeral.Number) {
	if n == nil {
		return
	}

	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	_ = Write(f, n)
}
