package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Run     RunConfig     `toml:"run"`
	Colors  ColorConfig   `toml:"colors"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type RunConfig struct {
	Batch     int    `toml:"batch"`      // ticks between transcript snapshots
	MaxTicks  int    `toml:"max_ticks"`  // 0 = unbounded
	OutputDir string `toml:"output_dir"` // where the .out files are written
	Color     bool   `toml:"color"`
	TPS       int    `toml:"tps"` // terminal viewer ticks per second
}

// Band is an inclusive-exclusive frequency range in THz.
type Band struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// Contains reports whether freq lies in [Min, Max).
func (b Band) Contains(freq int) bool { return freq >= b.Min && freq < b.Max }

type ColorConfig struct {
	Red    Band `toml:"red"`
	Orange Band `toml:"orange"`
	Yellow Band `toml:"yellow"`
	Green  Band `toml:"green"`
	Cyan   Band `toml:"cyan"`
	Blue   Band `toml:"blue"`
	Violet Band `toml:"violet"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config { return defaults() }

// Load reads a TOML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Run.Batch < 0 {
		return fmt.Errorf("run.batch must not be negative, got %d", c.Run.Batch)
	}
	if c.Run.MaxTicks < 0 {
		return fmt.Errorf("run.max_ticks must not be negative, got %d", c.Run.MaxTicks)
	}
	for name, b := range c.Colors.named() {
		if b.Max < b.Min {
			return fmt.Errorf("colors.%s: max %d below min %d", name, b.Max, b.Min)
		}
	}
	return nil
}

func (c ColorConfig) named() map[string]Band {
	return map[string]Band{
		"red": c.Red, "orange": c.Orange, "yellow": c.Yellow, "green": c.Green,
		"cyan": c.Cyan, "blue": c.Blue, "violet": c.Violet,
	}
}

func defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Run: RunConfig{
			Batch:     5,
			MaxTicks:  0,
			OutputDir: ".",
			Color:     false,
			TPS:       8,
		},
		Colors: ColorConfig{
			Red:    Band{Min: 400, Max: 484},
			Orange: Band{Min: 484, Max: 508},
			Yellow: Band{Min: 508, Max: 526},
			Green:  Band{Min: 526, Max: 606},
			Cyan:   Band{Min: 606, Max: 630},
			Blue:   Band{Min: 630, Max: 668},
			Violet: Band{Min: 668, Max: 789},
		},
	}
}
