package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
tab_bar_height = 2.0
gap_width = 0.0
min_size = 5.0
drag_threshold = 2.0
layout_file = "/tmp/layout.toml"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.TabBarHeight != 2 {
		t.Errorf("TabBarHeight = %v, want 2", cfg.TabBarHeight)
	}
	if cfg.GapWidth != 0 {
		t.Errorf("GapWidth = %v, want 0", cfg.GapWidth)
	}
	if cfg.MinSize != 5 {
		t.Errorf("MinSize = %v, want 5", cfg.MinSize)
	}
	if cfg.DragThreshold != 2 {
		t.Errorf("DragThreshold = %v, want 2", cfg.DragThreshold)
	}
	if cfg.LayoutFile != "/tmp/layout.toml" {
		t.Errorf("LayoutFile = %q, want /tmp/layout.toml", cfg.LayoutFile)
	}
}

func TestLoadConfig_ClampsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
tab_bar_height = -1.0
gap_width = -3.0
min_size = 0.0
drag_threshold = -0.5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	def := DefaultConfig()
	if cfg.TabBarHeight != def.TabBarHeight {
		t.Errorf("TabBarHeight = %v, want default %v", cfg.TabBarHeight, def.TabBarHeight)
	}
	if cfg.GapWidth != def.GapWidth {
		t.Errorf("GapWidth = %v, want default %v", cfg.GapWidth, def.GapWidth)
	}
	if cfg.MinSize != def.MinSize {
		t.Errorf("MinSize = %v, want default %v", cfg.MinSize, def.MinSize)
	}
	if cfg.DragThreshold != def.DragThreshold {
		t.Errorf("DragThreshold = %v, want default %v", cfg.DragThreshold, def.DragThreshold)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tab_bar_height = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() with invalid TOML should return an error")
	}
}
