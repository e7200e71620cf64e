package input

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type emitterEntry struct {
	Symbol    string `yaml:"symbol"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Frequency int    `yaml:"frequency"` // 0 = no pulse sequence
	Direction string `yaml:"direction"`
}

type placementEntry struct {
	Symbol string `yaml:"symbol"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

type circuitFile struct {
	Width     int              `yaml:"width"`
	Height    int              `yaml:"height"`
	Emitters  []emitterEntry   `yaml:"emitters"`
	Receivers []placementEntry `yaml:"receivers"`
	Mirrors   []placementEntry `yaml:"mirrors"`
}

// LoadYAML parses a structured circuit description:
//
//	width: 18
//	height: 6
//	emitters:
//	  - {symbol: A, x: 0, y: 2, frequency: 500, direction: E}
//	receivers:
//	  - {symbol: R0, x: 10, y: 4}
//	mirrors:
//	  - {symbol: "/", x: 5, y: 2}
//
// Entries are validated with the same rules as the line format; the Line of
// each placement is its 1-based index within its list.
func LoadYAML(data []byte) (*Layout, error) {
	var f circuitFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse circuit yaml: %w", err)
	}
	w, h, err := ParseSize(fmt.Sprintf("%d %d", f.Width, f.Height))
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}
	l := &Layout{Width: w, Height: h}

	for i, e := range f.Emitters {
		em, err := ParseEmitter(fmt.Sprintf("%s %d %d", e.Symbol, e.X, e.Y))
		if err != nil {
			return nil, fmt.Errorf("emitters[%d]: %w", i, err)
		}
		l.Placements = append(l.Placements, Placement{Line: i + 1, Component: em})
		if e.Frequency == 0 && e.Direction == "" {
			continue
		}
		p, err := ParsePulseSequence(fmt.Sprintf("%s %d %s", e.Symbol, e.Frequency, e.Direction))
		if err != nil {
			return nil, fmt.Errorf("emitters[%d]: %w", i, err)
		}
		l.Pulses = append(l.Pulses, PulseLine{Line: i + 1, Pulse: p})
	}
	for i, r := range f.Receivers {
		rc, err := ParseReceiver(fmt.Sprintf("%s %d %d", r.Symbol, r.X, r.Y))
		if err != nil {
			return nil, fmt.Errorf("receivers[%d]: %w", i, err)
		}
		l.Placements = append(l.Placements, Placement{Line: i + 1, Component: rc})
	}
	for i, m := range f.Mirrors {
		mr, err := ParseMirror(fmt.Sprintf("%s %d %d", m.Symbol, m.X, m.Y))
		if err != nil {
			return nil, fmt.Errorf("mirrors[%d]: %w", i, err)
		}
		l.Placements = append(l.Placements, Placement{Line: i + 1, Component: mr})
	}
	return l, nil
}

// LoadFile picks the loader by extension: .yaml/.yml or the line format.
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read circuit %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		l, err := LoadYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return l, nil
	default:
		l, err := LoadText(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return l, nil
	}
}
