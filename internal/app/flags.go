package app

import "flag"

// Config represents the command-line parameters shared by the circuit
// binaries. Flags override the TOML run config.
type Config struct {
	ConfigPath string
	Circuit    string
	Pulses     string
	Scenario   string
	Seed       int64
	Color      bool
	OutputDir  string
	View       bool
	TPS        int
	Scale      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scenario: "demo", TPS: 8, Scale: 24}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "TOML config file")
	fs.StringVar(&c.Circuit, "circuit", c.Circuit, "circuit file (.yaml/.yml or line format)")
	fs.StringVar(&c.Pulses, "pulses", c.Pulses, "pulse_sequence file applied after the circuit is built")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "built-in scenario used when -circuit is empty")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random scenario (0 keeps the default)")
	fs.BoolVar(&c.Color, "color", c.Color, "colour the board with ANSI escapes")
	fs.StringVar(&c.OutputDir, "out", c.OutputDir, "directory for the .out report files")
	fs.BoolVar(&c.View, "view", c.View, "watch the run in the terminal viewer")
	fs.IntVar(&c.TPS, "tps", c.TPS, "viewer ticks per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "GUI pixels per cell")
}

// Visited reports the names of flags set explicitly on fs.
func Visited(fs *flag.FlagSet) map[string]bool {
	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	return seen
}
