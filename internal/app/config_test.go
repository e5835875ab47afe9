package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Parse(newFlagSet(), nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 64 || cfg.Sim != "life" || !cfg.Paused {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestParseFileThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "life.json")
	doc := `{"width": 96, "height": 128, "ticks_per_frame": 4, "seed": 11, "paused": false}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	err := cfg.Parse(newFlagSet(), []string{"-config", path, "-h", "32", "-ticks", "2"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 96 {
		t.Fatalf("width %d, want 96 from file", cfg.Width)
	}
	if cfg.Height != 32 || cfg.Ticks != 2 {
		t.Fatalf("flags did not override file: h=%d ticks=%d", cfg.Height, cfg.Ticks)
	}
	if cfg.Seed != 11 || cfg.Paused {
		t.Fatalf("file values lost: seed=%d paused=%v", cfg.Seed, cfg.Paused)
	}
	if cfg.File != path {
		t.Fatalf("config path %q", cfg.File)
	}
}

func TestParseMissingFile(t *testing.T) {
	cfg := NewConfig()
	err := cfg.Parse(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "nope.json")})
	if err == nil || !strings.Contains(err.Error(), "failed to read file") {
		t.Fatalf("err = %v", err)
	}
}

func TestParseBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	if err := cfg.Parse(newFlagSet(), []string{"-config", path}); err == nil {
		t.Fatal("malformed JSON accepted")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":   func(c *Config) { c.Width = 0 },
		"ticks high":   func(c *Config) { c.Ticks = 11 },
		"zero scale":   func(c *Config) { c.Scale = 0 },
		"zero cell":    func(c *Config) { c.CellSize = 0 },
		"negative hud": func(c *Config) { c.HUDWidth = -1 },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if cfg.Validate() == nil {
			t.Fatalf("%s: Validate accepted %+v", name, cfg)
		}
	}
}

func TestSimConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Seed = 80, -4
	m := cfg.SimConfig()
	if m["w"] != "80" || m["h"] != "64" || m["ticks"] != "1" || m["seed"] != "-4" {
		t.Fatalf("SimConfig() = %v", m)
	}
}
