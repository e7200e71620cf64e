package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"laser-circuit/internal/circuit"
)

func newScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func row(s tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawBoardAndStatus(t *testing.T) {
	screen := newScreen(t)
	session := circuit.SessionFor("line", mustScenario(t, "line"))
	v := New(screen, session, 10, nil)

	v.Draw()
	if got := row(screen, 0, 7); got != "+-----+" {
		t.Fatalf("top border = %q", got)
	}
	if got := row(screen, 1, 7); got != "|A   0|" {
		t.Fatalf("board row = %q", got)
	}
	if got := row(screen, 4, 7); got != "Circuit" {
		t.Fatalf("status header = %q", got)
	}
}

func mustScenario(t *testing.T, name string) *circuit.Circuit {
	t.Helper()
	c, err := circuit.Scenario(name, circuit.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestKeysStepPauseAndQuit(t *testing.T) {
	screen := newScreen(t)
	session := circuit.SessionFor("line", mustScenario(t, "line"))
	v := New(screen, session, 10, nil)

	for i := 0; i < 3; i++ {
		if !v.handleKey(tcell.KeyRune, 'n') {
			t.Fatal("n must not quit")
		}
	}
	if c := session.Circuit(); c.Clock() != 2 {
		t.Fatalf("clock after emit and two steps = %d, want 2", c.Clock())
	}
	v.Draw()
	if got := row(screen, 1, 7); got != "|A.. 0|" {
		t.Fatalf("board row mid-run = %q", got)
	}

	v.handleKey(tcell.KeyRune, ' ')
	if !v.Paused() {
		t.Fatal("space must pause")
	}
	v.handleKey(tcell.KeyRune, ' ')
	if v.Paused() {
		t.Fatal("space must resume")
	}

	for i := 0; i < 10; i++ {
		v.handleKey(tcell.KeyRune, 'n')
	}
	if !session.Done() || session.Circuit().Clock() != 4 {
		t.Fatalf("done=%v clock=%d", session.Done(), session.Circuit().Clock())
	}

	if v.handleKey(tcell.KeyRune, 'q') || v.handleKey(tcell.KeyEscape, 0) || v.handleKey(tcell.KeyCtrlC, 0) {
		t.Fatal("q, Esc and Ctrl-C must quit")
	}
}
