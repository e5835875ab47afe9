package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim      string `json:"sim"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Ticks    int    `json:"ticks_per_frame"`
	Seed     int64  `json:"seed"`
	Scale    int    `json:"scale"`
	CellSize int    `json:"cell_size"`
	TPS      int    `json:"tps"`
	HUDWidth int    `json:"hud_width"`
	Paused   bool   `json:"paused"`
	Verbose  bool   `json:"verbose"`

	// File is the optional JSON config path; it is never read from JSON.
	File string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Width:    64,
		Height:   64,
		Ticks:    1,
		Scale:    1,
		CellSize: 5,
		TPS:      60,
		HUDWidth: 220,
		Paused:   true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "generations per frame (1-10)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "0 for the stripe pattern, otherwise a random fill seed")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels; 1 disables grid lines")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels; 0 hides it")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log the duration of every tick")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file; flags override it")
}

// Parse binds c to fs and parses args. When -config is given the file is
// loaded first and flags set on the command line are re-applied on top.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Config.Parse] failed to parse flags")
	}
	if c.File == "" {
		return c.Validate()
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := c.LoadFile(c.File); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "[Config.Parse] failed to re-apply flag -%s", name)
		}
	}
	return c.Validate()
}

// LoadFile overlays the JSON document at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	return nil
}

// Validate rejects values no host can run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Ticks < 1 || c.Ticks > 10:
		return errors.Errorf("ticks per frame must be within 1-10, got %d", c.Ticks)
	case c.Scale < 1:
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	case c.CellSize < 1:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.HUDWidth < 0:
		return errors.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	return nil
}

// SimConfig returns the key/value map handed to the sim factory.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"ticks": strconv.Itoa(c.Ticks),
		"seed":  strconv.FormatInt(c.Seed, 10),
	}
}
