package app

import (
	"flag"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("circuit", flag.ContinueOnError)
	cfg.Bind(fs)

	args := []string{"-circuit", "board.yaml", "-color", "-out", "out", "-seed", "9", "-tps", "3"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if cfg.Circuit != "board.yaml" || !cfg.Color || cfg.OutputDir != "out" || cfg.Seed != 9 || cfg.TPS != 3 {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.Scenario != "demo" || cfg.Scale != 24 {
		t.Fatalf("defaults lost: %+v", cfg)
	}

	seen := Visited(fs)
	if !seen["color"] || !seen["tps"] || seen["scenario"] {
		t.Fatalf("visited = %v", seen)
	}
}
