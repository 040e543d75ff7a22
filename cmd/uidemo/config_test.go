package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig returned %v", err)
	}
	want := defaultConfig()
	if cfg != want {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	data := []byte("title = \"custom\"\nwidth = 1024\nframes_per_second = 30.0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig returned %v", err)
	}
	if cfg.Title != "custom" || cfg.Width != 1024 {
		t.Errorf("cfg = %+v, want overridden title and width", cfg)
	}
	if cfg.Height != defaultConfig().Height {
		t.Errorf("height = %d, want untouched default", cfg.Height)
	}
	if cfg.FramesPerSecond != 30 {
		t.Errorf("fps = %v, want 30", cfg.FramesPerSecond)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"zero width", "width = 0\n"},
		{"negative fps", "frames_per_second = -1.0\n"},
		{"malformed", "width = \"wide\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tt.toml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := loadConfig(path); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
