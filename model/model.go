package model

// Mirror codes are stored in interior cells. They are negative so they can
// never be mistaken for a perimeter character code.
type Mirror int

const (
	MirrorNone     Mirror = -1
	MirrorForward  Mirror = -2
	MirrorStraight Mirror = -3
	MirrorBackward Mirror = -4
)

// Direction indexes Cell.Links. Opposite directions are two apart.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

const NoLink = -1

type Cell struct {
	Value int
	Links [4]int
}

// Field is one mirror field. Interior cell (row, col) lives at
// row*Size+col, perimeter slot p at Size*Size+p. Slots run top edge,
// right edge, bottom edge, left edge.
type Field struct {
	Size  int
	Cells []Cell
}

type Bank struct {
	Fields []*Field
}
