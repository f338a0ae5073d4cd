package engine

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mirrorfield/model"
)

// LoadByte places the next key byte. Mirrors for every field come first,
// field by field and row by row, then the perimeter characters field by
// field in slot order.
func (e *Engine) LoadByte(ch byte) error {
	n := e.cfg.GridSize
	mirrors := n * n * e.cfg.FieldCount
	total := e.cfg.KeySize()

	switch {
	case e.loaded < mirrors:
		m, ok := model.MirrorFromByte(ch)
		if !ok {
			return &LoadError{Offset: e.loaded, Byte: ch, Kind: BadMirror}
		}
		f := e.bank.Fields[e.loaded/(n*n)]
		f.Cells[e.loaded%(n*n)].Value = int(m)
	case e.loaded < total:
		i := e.loaded - mirrors
		f := e.bank.Fields[i/(4*n)]
		f.Slot(i % (4 * n)).Value = int(ch)
	default:
		return &LoadError{Offset: e.loaded, Byte: ch, Kind: Overflow}
	}
	e.loaded++
	return nil
}

// Loaded reports how many key bytes have been accepted.
func (e *Engine) Loaded() int {
	return e.loaded
}

// Validate checks the loaded key. Every problem found is reported in the
// returned *ValidationError.
func (e *Engine) Validate() error {
	var errs *multierror.Error
	if e.loaded != e.cfg.KeySize() {
		errs = multierror.Append(errs, fmt.Errorf("key has %d bytes, want %d", e.loaded, e.cfg.KeySize()))
	}
	slots := 4 * e.cfg.GridSize
	for k, f := range e.bank.Fields {
		for i := 0; i < f.Interior(); i++ {
			if !model.Mirror(f.Cells[i].Value).Valid() {
				errs = multierror.Append(errs, &FieldError{Field: k, Index: i, Reason: "illegal mirror code"})
			}
		}
		seen := make(map[int]int, slots)
		for p := 0; p < slots; p++ {
			v := f.Slot(p).Value
			if first, dup := seen[v]; dup {
				errs = multierror.Append(errs, &FieldError{
					Field:  k,
					Index:  p,
					Reason: fmt.Sprintf("character %#02x already at slot %d", v, first),
				})
				continue
			}
			seen[v] = p
			if e.cfg.LegacyRollOrder && v >= slots {
				errs = multierror.Append(errs, &FieldError{
					Field:  k,
					Index:  p,
					Reason: fmt.Sprintf("character %#02x outside legacy range", v),
				})
			}
		}
	}
	if errs != nil {
		log.WithFields(log.Fields{"problems": errs.Len()}).Debug("mirrorfield key rejected")
		e.validated = false
		return &ValidationError{Errs: errs}
	}
	e.validated = true
	return nil
}

// Link builds the topology of every field. The key must be valid.
func (e *Engine) Link() error {
	if !e.validated {
		return ErrNotReady
	}
	for _, f := range e.bank.Fields {
		f.Link()
	}
	e.linked = true
	return nil
}

// Load resets the engine and installs key.
func (e *Engine) Load(key []byte) error {
	e.Init()
	for _, ch := range key {
		if err := e.LoadByte(ch); err != nil {
			return err
		}
	}
	if err := e.Validate(); err != nil {
		return err
	}
	return e.Link()
}
