package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Config tunes the demo's layout behavior. All fields are optional; zero
// or negative values fall back to the defaults.
type Config struct {
	// TabBarHeight is the height of tab bars, in terminal rows.
	TabBarHeight float64 `toml:"tab_bar_height"`
	// GapWidth is the spacing between sibling tiles, in cells.
	GapWidth float64 `toml:"gap_width"`
	// MinSize is the smallest a tile may be resized to, in cells.
	MinSize float64 `toml:"min_size"`
	// DragThreshold is how far the pointer must travel before a press
	// becomes a drag, in cells.
	DragThreshold float64 `toml:"drag_threshold"`
	// LayoutFile is where the demo saves and restores its layout.
	LayoutFile string `toml:"layout_file"`
}

// DefaultConfig returns the settings used when no config file exists.
// The numbers are in terminal cells, so they are far smaller than the
// pixel defaults of the engine.
func DefaultConfig() Config {
	return Config{
		TabBarHeight:  1,
		GapWidth:      1,
		MinSize:       3,
		DragThreshold: 1,
	}
}

// LoadConfig reads the TOML config at path, falling back to
// [DefaultConfig] when the file does not exist. Out-of-range values are
// clamped to the defaults so a bad config degrades instead of breaking
// the demo.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.clamp()
	return cfg, nil
}

// clamp forces every tunable back into its sane range.
func (c *Config) clamp() {
	def := DefaultConfig()
	if c.TabBarHeight <= 0 {
		c.TabBarHeight = def.TabBarHeight
	}
	if c.GapWidth < 0 {
		c.GapWidth = def.GapWidth
	}
	if c.MinSize <= 0 {
		c.MinSize = def.MinSize
	}
	if c.DragThreshold <= 0 {
		c.DragThreshold = def.DragThreshold
	}
}
