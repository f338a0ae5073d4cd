package engine

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrNotReady is returned when a character is crypted before the key
	// has been validated and linked.
	ErrNotReady      = errors.New("mirrorfield: engine not validated and linked")
	ErrInvalidKey    = errors.New("mirrorfield: invalid key")
	ErrNotInAlphabet = errors.New("mirrorfield: character not in field alphabet")
)

type LoadErrorKind int

const (
	BadMirror LoadErrorKind = iota + 1
	Overflow
)

func (k LoadErrorKind) String() string {
	switch k {
	case BadMirror:
		return "bad mirror"
	case Overflow:
		return "overflow"
	default:
		return fmt.Sprintf("n/a:%d", int(k))
	}
}

// LoadError rejects a single key byte. The loader stays where it was.
type LoadError struct {
	Offset int
	Byte   byte
	Kind   LoadErrorKind
}

func (e *LoadError) Error() string {
	if e.Kind == Overflow {
		return fmt.Sprintf("mirrorfield: key byte %d (%#02x) past end of key", e.Offset, e.Byte)
	}
	return fmt.Sprintf("mirrorfield: key byte %d: %q is not a mirror", e.Offset, e.Byte)
}

// FieldError is one structural problem found by Validate.
type FieldError struct {
	Field  int
	Index  int
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %d index %d: %s", e.Field, e.Index, e.Reason)
}

type ValidationError struct {
	Errs *multierror.Error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidKey, e.Errs)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidKey, e.Errs}
}

// Len reports how many problems were found.
func (e *ValidationError) Len() int {
	return e.Errs.Len()
}

type LookupError struct {
	Field int
	Char  byte
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%v: %#02x in field %d", ErrNotInAlphabet, e.Char, e.Field)
}

func (e *LookupError) Unwrap() error {
	return ErrNotInAlphabet
}
