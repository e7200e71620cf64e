package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"laser-circuit/internal/circuit"
	"laser-circuit/internal/input"
)

// Load builds the circuit selected by cfg: the -circuit file when given,
// otherwise the named scenario. Pulses from -pulses are applied last. The
// returned name labels the run in logs and viewers.
func Load(cfg *Config, log *zap.Logger) (*circuit.Circuit, string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var (
		c    *circuit.Circuit
		name string
	)
	if cfg.Circuit != "" {
		layout, err := input.LoadFile(cfg.Circuit)
		if err != nil {
			return nil, "", err
		}
		if c, err = layout.Build(log); err != nil {
			return nil, "", fmt.Errorf("%s: %w", cfg.Circuit, err)
		}
		name = strings.TrimSuffix(filepath.Base(cfg.Circuit), filepath.Ext(cfg.Circuit))
	} else {
		sc := circuit.DefaultConfig()
		if cfg.Seed != 0 {
			sc.Seed = cfg.Seed
		}
		var err error
		if c, err = circuit.Scenario(cfg.Scenario, sc); err != nil {
			return nil, "", fmt.Errorf("scenario: %w (available: %s)", err, strings.Join(circuit.ScenarioNames(), ", "))
		}
		name = cfg.Scenario
		log.Info("scenario loaded", zap.String("scenario", name), zap.Int64("seed", sc.Seed))
	}

	if cfg.Pulses != "" {
		f, err := os.Open(cfg.Pulses)
		if err != nil {
			return nil, "", fmt.Errorf("open pulses: %w", err)
		}
		defer f.Close()
		pulses, err := input.LoadPulses(f)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", cfg.Pulses, err)
		}
		if err := input.ApplyPulses(c, pulses); err != nil {
			return nil, "", fmt.Errorf("%s: %w", cfg.Pulses, err)
		}
		log.Info("pulses applied", zap.Int("count", len(pulses)))
	}
	return c, name, nil
}
