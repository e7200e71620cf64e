// Package tui draws a running circuit in the terminal.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"laser-circuit/internal/circuit"
	"laser-circuit/internal/core"
)

const frameInterval = 16 * time.Millisecond

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	cellStyles  = [circuit.CellKinds]tcell.Style{
		circuit.CellEmpty:        tcell.StyleDefault,
		circuit.CellTrail:        tcell.StyleDefault.Foreground(tcell.ColorYellow),
		circuit.CellPhoton:       tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		circuit.CellEmitter:      tcell.StyleDefault.Foreground(tcell.ColorBlue).Underline(true),
		circuit.CellEmitterSpent: tcell.StyleDefault.Foreground(tcell.ColorGray),
		circuit.CellReceiver:     tcell.StyleDefault.Foreground(tcell.ColorGray),
		circuit.CellReceiverLit:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		circuit.CellMirror:       tcell.StyleDefault.Foreground(tcell.ColorPurple),
	}
)

// Viewer steps a session at a fixed rate and redraws it every frame.
type Viewer struct {
	screen  tcell.Screen
	session *circuit.Session
	pacer   *core.Pacer
	log     *zap.Logger
	paused  bool
}

// New wraps an initialised screen. The caller owns the screen and calls
// Fini once Run returns.
func New(screen tcell.Screen, session *circuit.Session, tps int, log *zap.Logger) *Viewer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Viewer{screen: screen, session: session, pacer: core.NewPacer(tps), log: log}
}

// Paused reports whether automatic stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Run polls input and advances the session until the user quits or ctx is
// cancelled. A finished circuit stays on screen until quit.
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !v.handleEvent(ev) {
				return nil
			}
			v.Draw()
		case now := <-ticker.C:
			if v.pacer.Ready(now) && !v.paused {
				v.advance()
			}
			v.Draw()
		}
	}
}

func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// handleKey returns false when the viewer should exit.
func (v *Viewer) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.advance()
		case 'r':
			v.session.Reset(0)
			v.log.Debug("session reset", zap.String("scenario", v.session.Name()))
		}
	}
	return true
}

func (v *Viewer) advance() {
	if v.session.Done() {
		return
	}
	v.session.Step()
	if v.session.Done() {
		c := v.session.Circuit()
		v.log.Info("circuit finished",
			zap.Int("clock", c.Clock()),
			zap.Int("activated", c.ActivatedCount()),
		)
	}
}

// Draw renders the board with its border, then the status panel below it.
func (v *Viewer) Draw() {
	s := v.screen
	s.Clear()

	board := v.session.Board()
	cells := v.session.Cells()
	size := v.session.Size()

	for x := 0; x <= size.W+1; x++ {
		s.SetContent(x, 0, '-', nil, styleBorder)
		s.SetContent(x, size.H+1, '-', nil, styleBorder)
	}
	for y := 0; y <= size.H+1; y++ {
		r := '|'
		if y == 0 || y == size.H+1 {
			r = '+'
		}
		s.SetContent(0, y, r, nil, styleBorder)
		s.SetContent(size.W+1, y, r, nil, styleBorder)
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style := tcell.StyleDefault
			if code := cells[y*size.W+x]; code < circuit.CellKinds {
				style = cellStyles[code]
			}
			s.SetContent(x+1, y+1, board.At(x, y), nil, style)
		}
	}

	row := size.H + 3
	for _, line := range v.session.Status().Lines() {
		drawText(s, 0, row, line, styleStatus)
		row++
	}
	help := "q quit  space pause  n step  r reset"
	if v.paused {
		help = "[paused]  " + help
	}
	drawText(s, 0, row+1, help, styleHelp)
	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
