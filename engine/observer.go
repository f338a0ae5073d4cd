package engine

import "github.com/zucenko/mirrorfield/model"

// Snapshot is a copy of one field taken while light crosses it.
type Snapshot struct {
	Field   int
	Size    int
	Cell    int
	Heading model.Direction
	// Done marks the last snapshot of a walk; Cell is then the exit slot.
	Done      bool
	Mirrors   []model.Mirror
	Perimeter []int
}

// OnSlot reports whether the light sits on the perimeter.
func (s Snapshot) OnSlot() bool {
	return s.Cell >= s.Size*s.Size
}

// Slot is the perimeter slot under the light, or -1.
func (s Snapshot) Slot() int {
	if !s.OnSlot() {
		return -1
	}
	return s.Cell - s.Size*s.Size
}

// Position is the interior row and column of the light.
func (s Snapshot) Position() (row, col int, ok bool) {
	if s.OnSlot() {
		return 0, 0, false
	}
	return s.Cell / s.Size, s.Cell % s.Size, true
}

type Observer interface {
	Observe(Snapshot)
}

type ObserverFunc func(Snapshot)

func (f ObserverFunc) Observe(s Snapshot) {
	f(s)
}

// Recorder keeps every snapshot it is shown.
type Recorder struct {
	Snapshots []Snapshot
}

func (r *Recorder) Observe(s Snapshot) {
	r.Snapshots = append(r.Snapshots, s)
}

func (r *Recorder) Reset() {
	r.Snapshots = r.Snapshots[:0]
}

func (e *Engine) notify(m int, f *model.Field, cell int, d model.Direction, done bool) {
	if e.observer == nil {
		return
	}
	e.observer.Observe(Snapshot{
		Field:     m,
		Size:      f.Size,
		Cell:      cell,
		Heading:   d,
		Done:      done,
		Mirrors:   f.Mirrors(),
		Perimeter: f.Perimeter(),
	})
}
