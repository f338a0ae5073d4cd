package engine

import "github.com/zucenko/mirrorfield/model"

// roll moves the entry and exit characters sv and ev into the roll window
// of f, the greater one to G1 and the other to G2. The window slides by one
// slot after every field has rolled once.
func (e *Engine) roll(sv, ev int, f *model.Field) {
	x1, x2 := ev, sv
	if e.cfg.LegacyRollOrder {
		if f.Slot(sv).Value > f.Slot(ev).Value {
			x1, x2 = sv, ev
		}
	} else if sv > ev {
		x1, x2 = sv, ev
	}

	f.Swap(f.Find(x1), e.window.G1)
	f.Swap(f.Find(x2), e.window.G2)

	e.window.C++
	if e.window.C == e.cfg.FieldCount {
		slots := f.Slots()
		e.window.G1 = (e.window.G1 + 1) % slots
		e.window.G2 = (e.window.G2 + 1) % slots
		e.window.C = 0
	}
}
