//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"laser-circuit/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the circuit view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.StatusSnapshot
	title      string
	paused     bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Update refreshes the cached status snapshot.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	provider, ok := h.sim.(core.StatusProvider)
	if !ok {
		h.snapshot = core.StatusSnapshot{}
		return
	}
	h.snapshot = provider.Status()
}

// Draw paints the HUD panel anchored to the right edge of the circuit view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := max(h.sim.Size().H*scale, minPanelHeight)
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	y += lineHeight
	for _, line := range h.snapshot.Lines() {
		fg := color.RGBA{R: 190, G: 190, B: 200, A: 255}
		if !strings.HasPrefix(line, " ") {
			fg = color.RGBA{R: 140, G: 170, B: 255, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, fg)
		y += lineHeight
	}
	if h.paused {
		text.Draw(h.panel, "[paused]", face, panelPadding, y+lineHeight, color.RGBA{R: 255, G: 200, B: 60, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Circuit"
	}
	return fmt.Sprintf("Circuit: %s", sim.Name())
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 6
	minPanelHeight = 240
)
