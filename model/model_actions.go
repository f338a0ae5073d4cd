package model

import "fmt"

func NewField(size int) *Field {
	f := &Field{
		Size:  size,
		Cells: make([]Cell, size*size+4*size),
	}
	f.Reset()
	return f
}

func NewBank(size, count int) *Bank {
	fields := make([]*Field, 0, count)
	for i := 0; i < count; i++ {
		fields = append(fields, NewField(size))
	}
	return &Bank{Fields: fields}
}

// Reset zeroes every value and drops every link.
func (f *Field) Reset() {
	for i := range f.Cells {
		f.Cells[i] = Cell{Links: [4]int{NoLink, NoLink, NoLink, NoLink}}
	}
}

func (b *Bank) Reset() {
	for _, f := range b.Fields {
		f.Reset()
	}
}

func (f *Field) Interior() int {
	return f.Size * f.Size
}

func (f *Field) Slots() int {
	return 4 * f.Size
}

func (f *Field) SlotIndex(p int) int {
	return f.Interior() + p
}

func (f *Field) CellIndex(row, col int) int {
	return row*f.Size + col
}

func (f *Field) IsSlot(i int) bool {
	return i >= f.Interior()
}

func (f *Field) Slot(p int) *Cell {
	return &f.Cells[f.SlotIndex(p)]
}

func (f *Field) Mirror(row, col int) Mirror {
	return Mirror(f.Cells[f.CellIndex(row, col)].Value)
}

func (f *Field) SetMirror(row, col int, m Mirror) {
	f.Cells[f.CellIndex(row, col)].Value = int(m)
}

// Find returns the perimeter slot holding v, or -1.
func (f *Field) Find(v int) int {
	for p := 0; p < f.Slots(); p++ {
		if f.Slot(p).Value == v {
			return p
		}
	}
	return -1
}

func (f *Field) Swap(p, q int) {
	a, b := f.Slot(p), f.Slot(q)
	a.Value, b.Value = b.Value, a.Value
}

// Link wires every column from its top slot down to its bottom slot and
// every row from its left slot across to its right slot.
func (f *Field) Link() {
	n := f.Size
	connect := func(from, to int, d Direction) {
		f.Cells[from].Links[d] = to
		f.Cells[to].Links[d.Opposite()] = from
	}
	for c := 0; c < n; c++ {
		prev := f.SlotIndex(c)
		for r := 0; r < n; r++ {
			cell := f.CellIndex(r, c)
			connect(prev, cell, Down)
			prev = cell
		}
		connect(prev, f.SlotIndex(2*n+c), Down)
	}
	for r := 0; r < n; r++ {
		prev := f.SlotIndex(3*n + r)
		for c := 0; c < n; c++ {
			cell := f.CellIndex(r, c)
			connect(prev, cell, Right)
			prev = cell
		}
		connect(prev, f.SlotIndex(n+r), Right)
	}
}

// Perimeter copies the slot values in slot order.
func (f *Field) Perimeter() []int {
	out := make([]int, f.Slots())
	for p := range out {
		out[p] = f.Slot(p).Value
	}
	return out
}

// Mirrors copies the interior values row by row.
func (f *Field) Mirrors() []Mirror {
	out := make([]Mirror, f.Interior())
	for i := range out {
		out[i] = Mirror(f.Cells[i].Value)
	}
	return out
}

func (f *Field) Clone() *Field {
	c := &Field{Size: f.Size, Cells: make([]Cell, len(f.Cells))}
	copy(c.Cells, f.Cells)
	return c
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("n/a:%d", int(d))
	}
}

// Valid reports whether m is one of the four mirror codes.
func (m Mirror) Valid() bool {
	return m <= MirrorNone && m >= MirrorBackward
}

// Rotate advances a mirror one step. None never turns.
func (m Mirror) Rotate() Mirror {
	switch m {
	case MirrorForward:
		return MirrorStraight
	case MirrorStraight:
		return MirrorBackward
	case MirrorBackward:
		return MirrorForward
	}
	return m
}

// Reflect returns the heading after light moving in d crosses m.
func (m Mirror) Reflect(d Direction) Direction {
	switch m {
	case MirrorForward:
		switch d {
		case Down:
			return Left
		case Left:
			return Down
		case Right:
			return Up
		case Up:
			return Right
		}
	case MirrorBackward:
		switch d {
		case Down:
			return Right
		case Left:
			return Up
		case Right:
			return Down
		case Up:
			return Left
		}
	}
	return d
}

func (m Mirror) Rune() rune {
	switch m {
	case MirrorForward:
		return '/'
	case MirrorBackward:
		return '\\'
	case MirrorStraight:
		return '-'
	}
	return ' '
}

// MirrorFromByte maps a key byte onto a mirror code.
func MirrorFromByte(b byte) (Mirror, bool) {
	switch b {
	case '/':
		return MirrorForward, true
	case '\\':
		return MirrorBackward, true
	case '-':
		return MirrorStraight, true
	case ' ':
		return MirrorNone, true
	}
	return 0, false
}
