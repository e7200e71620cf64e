package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"laser-circuit/internal/circuit"
)

const lineCircuit = `# end to end
5 1
emitter A 0 0
receiver R0 4 0

pulse A 3 E
`

func TestLoadTextBuildsRunnableCircuit(t *testing.T) {
	l, err := LoadText(strings.NewReader(lineCircuit))
	if err != nil {
		t.Fatal(err)
	}
	if l.Width != 5 || l.Height != 1 || len(l.Placements) != 2 || len(l.Pulses) != 1 {
		t.Fatalf("layout = %+v", l)
	}
	if l.Pulses[0].Line != 6 {
		t.Fatalf("pulse line = %d, want 6", l.Pulses[0].Line)
	}

	c, err := l.Build(zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	rep, err := c.Run(circuit.RunOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Clock != 4 || len(rep.Activation) != 1 {
		t.Fatalf("clock=%d activations=%d", rep.Clock, len(rep.Activation))
	}
}

func TestLoadTextErrorsCarryLine(t *testing.T) {
	cases := map[string]string{
		"5 0\n":                      "line 1: height must be greater than zero",
		"5 1\nemitter K 0 0\n":       "line 2: symbol is not between 'A'-'J'",
		"5 1\n\nlaser A 0 0\n":       `line 3: unknown keyword "laser"`,
		"5 1\npulse A 3 Q\n":         "line 2: direction must be 'N', 'E', 'S' or 'W'",
		"# nothing but comments\n\n": "missing board size",
		"5 1\nreceiver R0 1\n":       "line 2: <symbol> <x> <y>",
	}
	for in, want := range cases {
		_, err := LoadText(strings.NewReader(in))
		if err == nil || err.Error() != want {
			t.Fatalf("LoadText(%q) err = %v, want %q", in, err, want)
		}
	}
}

func TestBuildReportsPlacementLine(t *testing.T) {
	l, err := LoadText(strings.NewReader("3 1\nemitter A 0 0\nreceiver R0 0 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = l.Build(nil)
	want := "line 3: position (0, 0) is already taken by emitter 'A'"
	if err == nil || err.Error() != want {
		t.Fatalf("err = %v, want %q", err, want)
	}

	l, _ = LoadText(strings.NewReader("3 1\nemitter A 0 0\npulse B 5 E\n"))
	if _, err := l.Build(nil); err == nil || !strings.Contains(err.Error(), "emitter 'B' does not exist") {
		t.Fatalf("unknown pulse emitter err = %v", err)
	}
}

func TestLoadPulses(t *testing.T) {
	pulses, err := LoadPulses(strings.NewReader("A 100 E\n\nB 250 S\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(pulses) != 2 || pulses[1].Line != 3 || pulses[1].Direction != circuit.South {
		t.Fatalf("pulses = %+v", pulses)
	}
	if _, err := LoadPulses(strings.NewReader("A 100 E\nA 0 E\n")); err == nil || err.Error() != "line 2: frequency must be greater than zero" {
		t.Fatalf("err = %v", err)
	}
}

const mirrorYAML = `
width: 3
height: 2
emitters:
  - {symbol: A, x: 0, y: 1, frequency: 3, direction: E}
  - {symbol: B, x: 2, y: 1}
receivers:
  - {symbol: R0, x: 1, y: 0}
mirrors:
  - {symbol: "/", x: 1, y: 1}
`

func TestLoadYAML(t *testing.T) {
	l, err := LoadYAML([]byte(mirrorYAML))
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Placements) != 4 || len(l.Pulses) != 1 {
		t.Fatalf("layout = %+v", l)
	}
	c, err := l.Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Run(circuit.RunOptions{}); err != nil {
		t.Fatal(err)
	}
	r, _ := c.Receiver("R0")
	if r.ActivationTime() != 2 || r.Energy() != 3 {
		t.Fatalf("R0 time=%d energy=%d", r.ActivationTime(), r.Energy())
	}

	if _, err := LoadYAML([]byte("width: 0\nheight: 2\n")); err == nil || err.Error() != "size: width must be greater than zero" {
		t.Fatalf("err = %v", err)
	}
	if _, err := LoadYAML([]byte("width: 2\nheight: 2\nmirrors:\n  - {symbol: '|', x: 0, y: 0}\n")); err == nil || !strings.HasPrefix(err.Error(), "mirrors[0]: ") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "line.circuit")
	yml := filepath.Join(dir, "mirror.yaml")
	if err := os.WriteFile(text, []byte(lineCircuit), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yml, []byte(mirrorYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if l, err := LoadFile(text); err != nil || l.Width != 5 {
		t.Fatalf("text: %+v %v", l, err)
	}
	if l, err := LoadFile(yml); err != nil || l.Width != 3 {
		t.Fatalf("yaml: %+v %v", l, err)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}
