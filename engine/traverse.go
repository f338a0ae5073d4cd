package engine

import (
	"fmt"

	"github.com/zucenko/mirrorfield/model"
)

// heading is the direction light takes when it enters at a slot.
func heading(c model.Cell) (model.Direction, bool) {
	for _, d := range []model.Direction{model.Down, model.Up, model.Left, model.Right} {
		if c.Links[d] != model.NoLink {
			return d, true
		}
	}
	return 0, false
}

// advance walks light from slot entry of field m until it reaches the
// perimeter again and returns that slot. Mirrors are read as they were
// before the walk and each crossing rotates its cell once afterwards.
func (e *Engine) advance(m int, f *model.Field, entry int) (int, error) {
	pos := f.SlotIndex(entry)
	d, ok := heading(f.Cells[pos])
	if !ok {
		return 0, ErrNotReady
	}

	// a cell has two channels, so it is crossed at most twice
	limit := 2 * f.Interior()
	path := e.path[:0]
	for {
		e.notify(m, f, pos, d, false)
		pos = f.Cells[pos].Links[d]
		if f.IsSlot(pos) {
			break
		}
		if len(path) == limit {
			return 0, fmt.Errorf("mirrorfield: walk from slot %d of field %d exceeded %d cells", entry, m, limit)
		}
		path = append(path, pos)
		d = model.Mirror(f.Cells[pos].Value).Reflect(d)
	}
	for _, i := range path {
		f.Cells[i].Value = int(model.Mirror(f.Cells[i].Value).Rotate())
	}
	e.path = path
	e.notify(m, f, pos, d, true)

	return pos - f.Interior(), nil
}
