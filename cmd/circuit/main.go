package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"laser-circuit/internal/app"
	"laser-circuit/internal/circuit"
	"laser-circuit/internal/config"
	"laser-circuit/internal/display"
	"laser-circuit/internal/logging"
	"laser-circuit/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := app.NewConfig()
	fs := flag.NewFlagSet("circuit", flag.ExitOnError)
	flags.Bind(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, flags, app.Visited(fs))

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	c, name, err := app.Load(flags, log)
	if err != nil {
		return err
	}

	if flags.View {
		return view(c, name, cfg, log)
	}

	reporter := display.NewReporter(os.Stdout, display.Options{Color: cfg.Run.Color, Colors: cfg.Colors}, log)
	reporter.OutputDir = cfg.Run.OutputDir
	rep, err := reporter.Run(c, circuit.RunOptions{Batch: cfg.Run.Batch, MaxTicks: cfg.Run.MaxTicks})
	if err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	log.Info("circuit finished",
		zap.String("circuit", name),
		zap.Int("clock", rep.Clock),
		zap.Int("activated", len(rep.Activation)),
		zap.Int("receivers", len(c.Receivers())),
	)
	return nil
}

// applyFlags lets explicitly set flags win over the file config.
func applyFlags(cfg *config.Config, flags *app.Config, set map[string]bool) {
	if set["color"] {
		cfg.Run.Color = flags.Color
	}
	if set["out"] {
		cfg.Run.OutputDir = flags.OutputDir
	}
	if set["tps"] {
		cfg.Run.TPS = flags.TPS
	}
}

func view(c *circuit.Circuit, name string, cfg *config.Config, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v := tui.New(screen, circuit.SessionFor(name, c), cfg.Run.TPS, log)
	if err := v.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
