// Package lfmt contains writer helpers used when rendering lisp values.
package lfmt

import "io"

// WriteOp is a function that looks like w.Write but may involve many calls to
// w.Write and aggregate the result.
type WriteOp func(w io.Writer) (int, error)

// Writer wraps an io.Writer, counting bytes written and retaining the first
// error encountered.  After an error every further write is a no-op, which
// lets renderers emit a long sequence of fragments and check the error once.
type Writer struct {
	w   io.Writer
	sw  io.StringWriter
	n   int
	err error
}

// NewWriter wraps w.  If w implements io.StringWriter strings are written
// without conversion to a byte slice.
func NewWriter(w io.Writer) *Writer {
	sw, _ := w.(io.StringWriter)
	return &Writer{w: w, sw: sw}
}

// N returns the total number of bytes written.
func (w *Writer) N() int {
	return w.n
}

// Err returns the first error returned by the underlying writer.
func (w *Writer) Err() error {
	return w.err
}

// Result returns N and Err, in the form expected from an io.Writer style
// function.
func (w *Writer) Result() (int, error) {
	return w.n, w.err
}

// Write implements io.Writer
func (w *Writer) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(b)
	w.n += n
	w.err = err
	return n, err
}

// WriteString implements io.StringWriter
func (w *Writer) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.sw == nil {
		return w.Write([]byte(s))
	}
	n, err := w.sw.WriteString(s)
	w.n += n
	w.err = err
	return n, err
}

// Do passes the underlying io.Writer to fn and counts the reported number of
// bytes using fn's return value.  Do is skipped entirely if a previous write
// failed.
func (w *Writer) Do(fn WriteOp) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := fn(w.w)
	w.n += n
	w.err = err
	return n, err
}
