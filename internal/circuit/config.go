package circuit

import "strconv"

// Config controls generated and built-in boards.
type Config struct {
	Width  int
	Height int

	Seed int64

	Emitters  int
	Receivers int
	Mirrors   int

	MinFrequency int
	MaxFrequency int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        18,
		Height:       6,
		Seed:         1337,
		Emitters:     3,
		Receivers:    3,
		Mirrors:      6,
		MinFrequency: 400,
		MaxFrequency: 789,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["emitters"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Emitters = parsed
		}
	}
	if v, ok := cfg["receivers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Receivers = parsed
		}
	}
	if v, ok := cfg["mirrors"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Mirrors = parsed
		}
	}
	if v, ok := cfg["freq_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MinFrequency = parsed
		}
	}
	if v, ok := cfg["freq_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxFrequency = parsed
		}
	}
	if c.MaxFrequency < c.MinFrequency {
		c.MaxFrequency = c.MinFrequency
	}
	return c
}
