//go:build ebiten

package ui

import (
	"image/color"

	"laser-circuit/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type boardProvider interface {
	Board() *core.RuneGrid
}

// minLabelScale is the smallest cell size that fits a 7x13 glyph.
const minLabelScale = 14

// Overlay draws component labels and grid lines on top of the cell colours.
// G toggles the grid and L toggles the labels.
type Overlay struct {
	sim        core.Sim
	scale      int
	showGrid   bool
	showLabels bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showLabels: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.showLabels = !o.showLabels
	}
}

// Draw renders the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showGrid {
		o.drawGrid(screen)
	}
	if o.showLabels && o.scale >= minLabelScale {
		o.drawLabels(screen)
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image) {
	size := o.sim.Size()
	w, h := size.W*o.scale, size.H*o.scale
	line := color.RGBA{R: 40, G: 40, B: 48, A: 255}
	for x := 0; x <= size.W; x++ {
		o.fillRect(screen, x*o.scale, 0, 1, h, line)
	}
	for y := 0; y <= size.H; y++ {
		o.fillRect(screen, 0, y*o.scale, w, 1, line)
	}
}

func (o *Overlay) drawLabels(screen *ebiten.Image) {
	provider, ok := o.sim.(boardProvider)
	if !ok {
		return
	}
	board := provider.Board()
	size := o.sim.Size()
	face := basicfont.Face7x13
	fg := color.RGBA{A: 255}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			r := board.At(x, y)
			if r == ' ' || r == '.' {
				continue
			}
			px := x*o.scale + (o.scale-7)/2
			py := y*o.scale + (o.scale+10)/2
			text.Draw(screen, string(r), face, px, py, fg)
		}
	}
}

func (o *Overlay) fillRect(dst *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
