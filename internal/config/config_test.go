package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingOptional(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	if err != nil {
		t.Fatalf("optional missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false); err == nil {
		t.Error("required missing file should fail")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mosaic.yaml")
	body := "board_width: 32\nboard_height: 18\nprioritize_tetrominos: true\nskins_dir: skins\nworkers: 8\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BoardWidth != 32 || cfg.BoardHeight != 18 || !cfg.PrioritizeTetrominos ||
		cfg.SkinsDir != "skins" || cfg.Workers != 8 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mosaic.yaml")
	if err := os.WriteFile(path, []byte("board_width: 15\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BoardWidth != 15 || cfg.BoardHeight != Default().BoardHeight || cfg.Workers != Default().Workers {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.BoardWidth = 0 }, true},
		{"negative height", func(c *Config) { c.BoardHeight = -3 }, true},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"empty skins dir", func(c *Config) { c.SkinsDir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
