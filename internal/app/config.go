package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config represents the command-line and file parameters shared by the
// GUI and the headless driver.
type Config struct {
	Sim    string `json:"sim"`
	Seed   int64  `json:"seed"`
	TPS    int    `json:"tps"`
	Scale  int    `json:"scale"`
	ViewW  int    `json:"view_width"`
	ViewH  int    `json:"view_height"`
	Ticks  int    `json:"ticks"`
	Width  int64  `json:"width"`
	Height int64  `json:"height"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:    "life",
		Seed:   42,
		TPS:    30,
		Scale:  3,
		ViewW:  256,
		ViewH:  192,
		Ticks:  1000,
		Width:  128,
		Height: 128,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random population")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.ViewW, "view-w", c.ViewW, "view window width in cells")
	fs.IntVar(&c.ViewH, "view-h", c.ViewH, "view window height in cells")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "generations to simulate in headless runs")
	fs.Int64Var(&c.Width, "width", c.Width, "seed region width in cells")
	fs.Int64Var(&c.Height, "height", c.Height, "seed region height in cells")
}

// SimOptions returns the factory configuration map derived from the
// seed-region settings.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w": strconv.FormatInt(c.Width, 10),
		"h": strconv.FormatInt(c.Height, 10),
	}
}

// LoadFile overlays JSON configuration from path onto the current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return nil
}
