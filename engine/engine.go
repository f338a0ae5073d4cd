// Package engine implements the mirror field cipher.
//
// A character enters one of the fields at the perimeter slot holding its
// code, is reflected by the interior mirrors and leaves at another slot.
// Every mirror the light passes rotates, the two characters involved are
// rolled into a sliding window of perimeter slots, and the next character
// uses the next field. Running the same bytes through an engine loaded with
// the same key undoes the transformation.
//
// An Engine is not safe for concurrent use.
package engine

import (
	"github.com/zucenko/mirrorfield/model"
)

const (
	DefaultGridSize   = 64
	DefaultFieldCount = 4
)

type Config struct {
	GridSize   int
	FieldCount int
	// LegacyRollOrder orders rolled characters by indexing the perimeter
	// with the raw character codes. Every code must then be below
	// 4*GridSize.
	LegacyRollOrder bool
}

// KeySize is the number of key bytes the loader expects.
func (c Config) KeySize() int {
	return c.GridSize*c.GridSize*c.FieldCount + 4*c.GridSize*c.FieldCount
}

type Option func(*Engine)

// WithObserver registers o to receive a snapshot at every traversal step.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// Window is the roll window shared by all fields.
type Window struct {
	G1, G2 int
	C      int
}

type Engine struct {
	cfg  Config
	bank *model.Bank

	loaded    int
	validated bool
	linked    bool

	cursor int
	window Window

	observer Observer
	path     []int
}

func New(cfg Config, opts ...Option) *Engine {
	if cfg.GridSize <= 0 {
		cfg.GridSize = DefaultGridSize
	}
	if cfg.FieldCount <= 0 {
		cfg.FieldCount = DefaultFieldCount
	}
	e := &Engine{
		cfg:  cfg,
		bank: model.NewBank(cfg.GridSize, cfg.FieldCount),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Init()
	return e
}

// Init drops the loaded key and every piece of running state.
func (e *Engine) Init() {
	e.bank.Reset()
	e.loaded = 0
	e.validated = false
	e.linked = false
	e.cursor = 0
	e.window = Window{G1: 0, G2: 2 * e.cfg.GridSize}
	e.path = make([]int, 0, 2*e.cfg.GridSize*e.cfg.GridSize)
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Field returns the index of the field the next character will use.
func (e *Engine) Field() int {
	return e.cursor
}

func (e *Engine) Window() Window {
	return e.window
}

func (e *Engine) Ready() bool {
	return e.linked
}

// State is a copy of everything that changes while crypting.
type State struct {
	Mirrors    [][]model.Mirror
	Perimeters [][]int
	Cursor     int
	Window     Window
}

func (e *Engine) State() State {
	s := State{
		Mirrors:    make([][]model.Mirror, 0, len(e.bank.Fields)),
		Perimeters: make([][]int, 0, len(e.bank.Fields)),
		Cursor:     e.cursor,
		Window:     e.window,
	}
	for _, f := range e.bank.Fields {
		s.Mirrors = append(s.Mirrors, f.Mirrors())
		s.Perimeters = append(s.Perimeters, f.Perimeter())
	}
	return s
}
