package engine

import (
	"fmt"
	"io"
)

// CryptChar runs one character through the current field and moves on to
// the next field. A character outside the field's alphabet leaves the
// engine untouched.
func (e *Engine) CryptChar(ch byte) (byte, error) {
	if !e.linked {
		return 0, ErrNotReady
	}
	m := e.cursor
	f := e.bank.Fields[m]

	entry := f.Find(int(ch))
	if entry < 0 {
		return 0, &LookupError{Field: m, Char: ch}
	}
	exit, err := e.advance(m, f, entry)
	if err != nil {
		return 0, err
	}

	sv := f.Slot(entry).Value
	ev := f.Slot(exit).Value
	e.roll(sv, ev, f)

	out := ev
	if k := (ev + sv) % f.Slots(); f.Slot(k).Value == k {
		out = sv
	}

	e.cursor = (e.cursor + 1) % e.cfg.FieldCount
	return byte(out), nil
}

// Crypt runs src through the engine into dst and returns how many bytes
// were written before the first error.
func (e *Engine) Crypt(dst, src []byte) (int, error) {
	if len(dst) < len(src) {
		return 0, fmt.Errorf("mirrorfield: output buffer %d smaller than input %d", len(dst), len(src))
	}
	for i, ch := range src {
		out, err := e.CryptChar(ch)
		if err != nil {
			return i, fmt.Errorf("byte %d: %w", i, err)
		}
		dst[i] = out
	}
	return len(src), nil
}

// Writer crypts everything written to it into an underlying writer.
type Writer struct {
	e   *Engine
	w   io.Writer
	buf []byte
}

func NewWriter(e *Engine, w io.Writer) *Writer {
	return &Writer{e: e, w: w}
}

func (w *Writer) Write(p []byte) (int, error) {
	if cap(w.buf) < len(p) {
		w.buf = make([]byte, len(p))
	}
	buf := w.buf[:len(p)]
	n, err := w.e.Crypt(buf, p)
	// n bytes went through the engine either way
	if _, werr := w.w.Write(buf[:n]); werr != nil {
		return n, werr
	}
	return n, err
}
