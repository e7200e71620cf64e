//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"laser-circuit/internal/app"
	"laser-circuit/internal/circuit"
	"laser-circuit/internal/config"
	"laser-circuit/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := app.NewConfig()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var sim *circuit.Session
	if flags.Circuit == "" {
		// Scenario sessions rebuild themselves on reset.
		build, ok := circuit.ScenarioBuilder(flags.Scenario)
		if !ok {
			return fmt.Errorf("unknown scenario %q", flags.Scenario)
		}
		sc := circuit.DefaultConfig()
		if flags.Seed != 0 {
			sc.Seed = flags.Seed
		}
		sim = circuit.NewSession(flags.Scenario, sc, build)
		if err := sim.Err(); err != nil {
			return err
		}
	} else {
		c, name, err := app.Load(flags, log)
		if err != nil {
			return err
		}
		sim = circuit.SessionFor(name, c)
	}

	game := app.New(sim, flags.Scale, flags.TPS, flags.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("laser-circuit: " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
