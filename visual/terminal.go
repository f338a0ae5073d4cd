package visual

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/zucenko/mirrorfield/engine"
)

var (
	styleMirror = tcell.StyleDefault
	styleSlot   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleLight  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// Terminal is an engine.Observer that redraws the field on a tcell screen
// and waits delay after every step.
type Terminal struct {
	screen tcell.Screen
	delay  time.Duration
	clock  clockwork.Clock
}

type Option func(*Terminal)

func WithClock(c clockwork.Clock) Option {
	return func(t *Terminal) {
		t.clock = c
	}
}

func NewTerminal(screen tcell.Screen, delay time.Duration, opts ...Option) *Terminal {
	t := &Terminal{
		screen: screen,
		delay:  delay,
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Open initialises the real terminal. Call the returned func to restore it.
func Open(delay time.Duration) (*Terminal, func(), error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, nil, err
	}
	return NewTerminal(screen, delay), screen.Fini, nil
}

func (t *Terminal) Observe(s engine.Snapshot) {
	t.Draw(s)
	if t.delay > 0 {
		t.clock.Sleep(t.delay)
	}
}

func (t *Terminal) Draw(s engine.Snapshot) {
	t.screen.Clear()
	for y, row := range Layout(s) {
		for x, g := range row {
			st := styleMirror
			if g.Slot {
				st = styleSlot
			}
			if g.Light {
				st = styleLight
			}
			for i, ch := range g.Text {
				t.screen.SetContent(2*x+i, y, ch, nil, st)
			}
		}
	}
	status := fmt.Sprintf("field %d  heading %s", s.Field, s.Heading)
	if s.Done {
		status = fmt.Sprintf("field %d  exit slot %d", s.Field, s.Slot())
	}
	for i, ch := range status {
		t.screen.SetContent(i, s.Size+3, ch, nil, styleStatus)
	}
	t.screen.Show()
}
