package main

import (
	"fmt"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mirrorfield/visual"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"image/color"
)

const (
	margin    = 16
	statusH   = 40
	stepTime  = 0.12
	holdTime  = 0.8
	maxScreen = 720
)

func HexToColor(u uint32) color.RGBA {
	return color.RGBA{R: uint8(u >> 16), G: uint8(u >> 8), B: uint8(u), A: 0xff}
}

var COLOR_BG = HexToColor(0x464646)
var COLOR_PANEL = HexToColor(0x1e1e1e)
var COLOR_BORDER = HexToColor(0x808080)
var COLOR_MIRROR = HexToColor(0xf0f0f0)
var COLOR_SLOT = HexToColor(0x34fbf6)
var COLOR_LIGHT = HexToColor(0xedbc1e)

type GameState int

const (
	IDLE GameState = iota + 1
	COOLDOWN
	ACTING
	GAME_OVER
)

func (s GameState) Name() string {
	switch s {
	case IDLE:
		return "IDLE"
	case COOLDOWN:
		return "COOLDOWN"
	case ACTING:
		return "ACTING"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Game animates the light of every recorded character, one after another.
type Game struct {
	State    GameState
	Model    *Model
	Panel    *Nine
	Font     font.Face
	Trace    int
	Timeline *visual.Timeline
	Output   []byte
	paused   bool
	cooldown float32

	size          int
	width, height int
}

func NewGame(m *Model) *Game {
	cells := m.Config.GridSize + 2
	size := maxScreen / cells
	if size > 48 {
		size = 48
	}
	if size < 10 {
		size = 10
	}
	g := &Game{
		State:  IDLE,
		Model:  m,
		Panel:  NewPanel(COLOR_BORDER, COLOR_PANEL),
		Font:   newFace(float64(size) * .55),
		size:   size,
		width:  cells*size + 2*margin,
		height: cells*size + 2*margin + statusH,
	}
	g.Panel.SetPosition(margin/2, margin/2)
	g.Panel.SetSize(cells*size+margin, cells*size+margin)
	g.start(0)
	return g
}

func newFace(size float64) font.Face {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func (g *Game) start(i int) {
	if i >= len(g.Model.Traces) {
		g.State = GAME_OVER
		return
	}
	g.Trace = i
	g.Timeline = visual.NewTimeline(g.Model.Traces[i].Frames, stepTime)
	g.State = ACTING
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) && g.State == ACTING {
		g.Timeline.Skip()
	}
	if g.paused {
		return nil
	}

	dt := 1 / float32(ebiten.TPS())
	switch g.State {
	case ACTING:
		g.Timeline.Update(dt)
		if g.Timeline.Done() {
			g.Output = append(g.Output, g.Model.Traces[g.Trace].Out)
			g.cooldown = holdTime
			g.State = COOLDOWN
		}
	case COOLDOWN:
		g.cooldown -= dt
		if g.cooldown <= 0 {
			g.start(g.Trace + 1)
		}
	}
	return nil
}

func lightAt(rows [][]visual.Glyph) (x, y int, ok bool) {
	for y, row := range rows {
		for x, gl := range row {
			if gl.Light {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func (g *Game) drawLight(screen *ebiten.Image, rows [][]visual.Glyph, alpha float32) {
	x, y, ok := lightAt(rows)
	if !ok || alpha <= 0 {
		return
	}
	clr := color.NRGBA{COLOR_LIGHT.R, COLOR_LIGHT.G, COLOR_LIGHT.B, uint8(255 * alpha)}
	vector.DrawFilledRect(screen,
		float32(margin+x*g.size), float32(margin+y*g.size),
		float32(g.size), float32(g.size), clr, false)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(COLOR_BG)
	g.Panel.Draw(screen)
	if g.Timeline == nil {
		ebitenutil.DebugPrintAt(screen, "nothing to show", margin, g.height-statusH)
		return
	}

	rows := visual.Layout(g.Timeline.Frame())
	light := g.Timeline.Light()
	g.drawLight(screen, rows, 1-light)
	g.drawLight(screen, visual.Layout(g.Timeline.Next()), light)

	baseline := g.size * 3 / 4
	for y, row := range rows {
		for x, gl := range row {
			clr := COLOR_MIRROR
			if gl.Slot {
				clr = COLOR_SLOT
			}
			text.Draw(screen, gl.Text, g.Font, margin+x*g.size, margin+y*g.size+baseline, clr)
		}
	}

	tr := g.Model.Traces[g.Trace]
	f := g.Timeline.Frame()
	state := g.State.Name()
	if g.paused {
		state = "PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %q -> %q  field %d  step %d/%d",
		state, tr.In, tr.Out, f.Field, g.Timeline.Index()+1, len(tr.Frames)), margin, g.height-statusH)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("out %q", g.Output), margin, g.height-statusH/2)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	model, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	g := NewGame(model)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Mirror Field")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
