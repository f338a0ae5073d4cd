package visual

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/mirrorfield/engine"
)

// Action is what runs while its tween moves and after the tween finishes.
type Action struct {
	nexts    []func(tl *Timeline)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// next schedules t to start when a finishes and returns the action for t.
func (a *Action) next(t *gween.Tween) *Action {
	action := Action{}
	if a.nexts == nil {
		a.nexts = make([]func(tl *Timeline), 0)
	}
	a.nexts = append(a.nexts,
		func(tl *Timeline) {
			tl.Tweens[t] = action
		})
	return &action
}

// Timeline replays the snapshots of one traversal. The light moves from
// one frame to the next in one tween of Step seconds.
type Timeline struct {
	Frames []engine.Snapshot
	Step   float32
	Tweens map[*gween.Tween]Action

	index int
	light float32
	done  bool
}

func NewTimeline(frames []engine.Snapshot, step float32) *Timeline {
	tl := &Timeline{
		Frames: frames,
		Step:   step,
		Tweens: make(map[*gween.Tween]Action),
	}
	if len(frames) < 2 {
		tl.done = true
		return tl
	}

	var root *gween.Tween
	var rootAction Action
	var prev *Action
	for i := 0; i+1 < len(frames); i++ {
		t := gween.New(0, 1, step, ease.OutQuad)
		var a *Action
		if prev == nil {
			root, a = t, &rootAction
		} else {
			a = prev.next(t)
		}
		a.onChange = func(v float32) { tl.light = v }
		reached := i + 1
		a.addOnFinish(func() {
			tl.index = reached
			tl.light = 0
		})
		prev = a
	}
	prev.addOnFinish(func() { tl.done = true })
	tl.Tweens[root] = rootAction
	return tl
}

// Update advances every running tween by dt seconds.
func (tl *Timeline) Update(dt float32) {
	var started []func(tl *Timeline)
	for t, a := range tl.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			started = append(started, a.nexts...)
			delete(tl.Tweens, t)
		}
	}
	for _, next := range started {
		next(tl)
	}
}

// Skip jumps to the last frame.
func (tl *Timeline) Skip() {
	for t := range tl.Tweens {
		delete(tl.Tweens, t)
	}
	if len(tl.Frames) > 0 {
		tl.index = len(tl.Frames) - 1
	}
	tl.light = 0
	tl.done = true
}

func (tl *Timeline) Done() bool {
	return tl.done
}

func (tl *Timeline) Index() int {
	return tl.index
}

// Frame is the snapshot the light last reached.
func (tl *Timeline) Frame() engine.Snapshot {
	return tl.Frames[tl.index]
}

// Next is the snapshot the light is moving to.
func (tl *Timeline) Next() engine.Snapshot {
	if tl.index+1 < len(tl.Frames) {
		return tl.Frames[tl.index+1]
	}
	return tl.Frames[tl.index]
}

// Light is how far the light is between Frame and Next, from 0 to 1.
func (tl *Timeline) Light() float32 {
	return tl.light
}
