package display

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"laser-circuit/internal/circuit"
)

const (
	header = "========================\n   RUNNING CIRCUIT...\n========================"
	footer = "========================\n   CIRCUIT FINISHED!\n========================"
)

// Output file names written by Reporter.
const (
	EmitFile       = "emit_photons.out"
	ActivationFile = "activation_times.out"
	EnergyFile     = "total_energy.out"
)

// Reporter runs a circuit and prints the transcript to out. When OutputDir
// is set the three report sections are also written there.
type Reporter struct {
	out       io.Writer
	opts      Options
	OutputDir string
	log       *zap.Logger
}

func NewReporter(out io.Writer, opts Options, log *zap.Logger) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reporter{out: out, opts: opts, log: log}
}

// Run drives c with the given options and prints every section. A tick
// limit still prints the partial reports before the error is returned.
func (r *Reporter) Run(c *circuit.Circuit, opts circuit.RunOptions) (circuit.Report, error) {
	fmt.Fprintln(r.out, header)
	fmt.Fprintln(r.out)

	var emitted []string
	opts.OnEmit = func(c *circuit.Circuit) {
		emitted = EmitLines(c)
		fmt.Fprintf(r.out, "%dns: Emitting photons.\n", c.Clock())
		for _, line := range emitted {
			fmt.Fprintln(r.out, line)
		}
		fmt.Fprintln(r.out)
	}
	opts.OnBatch = func(c *circuit.Circuit) {
		fmt.Fprintln(r.out, StatusLine(c))
		fmt.Fprintln(r.out, Board(c, r.opts))
		fmt.Fprintln(r.out)
		r.log.Debug("batch", zap.Int("clock", c.Clock()), zap.Int("activated", c.ActivatedCount()))
	}

	rep, err := c.Run(opts)
	if err != nil && !errors.Is(err, circuit.ErrTickLimit) {
		return rep, err
	}
	if errors.Is(err, circuit.ErrTickLimit) {
		r.log.Warn("tick limit reached", zap.Int("clock", rep.Clock))
	}

	activation := ActivationLines(rep)
	energy := EnergyLines(rep)
	fmt.Fprintln(r.out, "Activation times:")
	for _, line := range activation {
		fmt.Fprintln(r.out, line)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Total energy absorbed:")
	for _, line := range energy {
		fmt.Fprintln(r.out, line)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, footer)

	if r.OutputDir != "" {
		files := map[string][]string{EmitFile: emitted, ActivationFile: activation, EnergyFile: energy}
		if werr := WriteFiles(r.OutputDir, files); werr != nil {
			return rep, werr
		}
		r.log.Info("reports written", zap.String("dir", r.OutputDir))
	}
	return rep, err
}

// StatusLine is the per-batch progress line.
func StatusLine(c *circuit.Circuit) string {
	return fmt.Sprintf("%dns: %d/%d receiver(s) activated.", c.Clock(), c.ActivatedCount(), len(c.Receivers()))
}

// EmitLines lists every emitter in symbol order.
func EmitLines(c *circuit.Circuit) []string {
	var out []string
	for _, e := range c.Emitters() {
		out = append(out, e.String())
	}
	return out
}

// ActivationLines formats the activation report as "R0: 4ns".
func ActivationLines(rep circuit.Report) []string {
	var out []string
	for _, r := range rep.Activation {
		out = append(out, fmt.Sprintf("%s: %dns", r.Symbol(), r.ActivationTime()))
	}
	return out
}

// EnergyLines formats the energy report as "R0: 12THz (2)".
func EnergyLines(rep circuit.Report) []string {
	var out []string
	for _, r := range rep.Energy {
		out = append(out, r.String())
	}
	return out
}

// WriteFiles writes each section to dir, one line per entry, creating dir
// when needed.
func WriteFiles(dir string, files map[string][]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	for name, lines := range files {
		var b strings.Builder
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
