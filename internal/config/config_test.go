package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.FOV != 75 {
		t.Errorf("expected fov 75, got %v", cfg.Graphics.FOV)
	}
	if cfg.Scene.Primary != "island" {
		t.Errorf("expected primary body island, got %s", cfg.Scene.Primary)
	}
	if len(cfg.Scene.Bodies) != 4 {
		t.Errorf("expected 4 bodies, got %d", len(cfg.Scene.Bodies))
	}
	if cfg.Scene.Intro.CameraZ.To != 30 {
		t.Errorf("expected resting camera z 30, got %v", cfg.Scene.Intro.CameraZ.To)
	}
	if cfg.Scene.Scroll.Camera.Z.Coef != -0.025 {
		t.Errorf("expected camera z coefficient -0.025, got %v", cfg.Scene.Scroll.Camera.Z.Coef)
	}
	if cfg.Page.RevealSpring != "wobbly" {
		t.Errorf("expected wobbly reveal spring, got %s", cfg.Page.RevealSpring)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true

scene:
  intro:
    camera_z:
      from: 120
      to: 30
      rate: 2
  scroll:
    camera:
      z:
        base: 30
        coef: -0.05

page:
  reveal_delay: 0.5

logging:
  level: "debug"
  log_file: "planetfolio.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Scene.Intro.CameraZ.From != 120 || cfg.Scene.Intro.CameraZ.Rate != 2 {
		t.Errorf("expected camera_z from 120 rate 2, got %+v", cfg.Scene.Intro.CameraZ)
	}
	// Untouched channels keep their defaults
	if cfg.Scene.Intro.CameraY.From != 50 {
		t.Errorf("expected camera_y default from 50, got %v", cfg.Scene.Intro.CameraY.From)
	}
	if cfg.Scene.Scroll.Camera.Z.Coef != -0.05 {
		t.Errorf("expected coef -0.05, got %v", cfg.Scene.Scroll.Camera.Z.Coef)
	}
	if len(cfg.Scene.Scroll.Bodies) != 4 {
		t.Errorf("expected default body coefficients to survive, got %d", len(cfg.Scene.Scroll.Bodies))
	}
	if cfg.Page.RevealDelay != 0.5 {
		t.Errorf("expected reveal delay 0.5, got %v", cfg.Page.RevealDelay)
	}
	if cfg.Logging.LogFile != "planetfolio.log" {
		t.Errorf("expected log file 'planetfolio.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	tomlContent := `
[graphics]
width = 1600
fov = 60.0

[scene.intro]
tolerance = 0.5

[page]
header_spring = "default"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Graphics.Width != 1600 {
		t.Errorf("expected width 1600, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.FOV != 60 {
		t.Errorf("expected fov 60, got %v", cfg.Graphics.FOV)
	}
	if cfg.Scene.Intro.Tolerance != 0.5 {
		t.Errorf("expected tolerance 0.5, got %v", cfg.Scene.Intro.Tolerance)
	}
	if cfg.Page.HeaderSpring != "default" {
		t.Errorf("expected header spring default, got %s", cfg.Page.HeaderSpring)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected default height 720, got %d", cfg.Graphics.Height)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"bad fov", func(c *Config) { c.Graphics.FOV = 200 }},
		{"zero rate", func(c *Config) { c.Scene.Intro.CameraZ.Rate = 0 }},
		{"zero tolerance", func(c *Config) { c.Scene.Intro.Tolerance = 0 }},
		{"unknown shape", func(c *Config) { c.Scene.Bodies[0].Shape = "fbx" }},
		{"duplicate body", func(c *Config) { c.Scene.Bodies[1].ID = "island" }},
		{"unknown primary", func(c *Config) { c.Scene.Primary = "moon" }},
		{"coefficients for unknown body", func(c *Config) { c.Scene.Scroll.Bodies[0].ID = "moon" }},
		{"section height", func(c *Config) { c.Page.Layout.Sections[0].Height = 0 }},
		{"unknown spring", func(c *Config) { c.Page.RevealSpring = "bouncy" }},
		{"ambient out of range", func(c *Config) { c.Scene.Light.Ambient = 1.5 }},
		{"negative star count", func(c *Config) { c.Scene.Stars.Count = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[graphics]\nwidth = 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); filepath.Base(path) != "config.toml" {
		t.Errorf("expected to find config.toml in current directory, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "skip intro flag",
			setup: func() { *flagSkipIntro = true },
			verify: func(cfg *Config) {
				if !cfg.Scene.SkipIntro {
					t.Error("expected skip_intro with skip-intro flag")
				}
			},
			teardown: func() { *flagSkipIntro = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  primary: moon\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadFile(configPath); err == nil {
		t.Error("expected validation error, got nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			cfg := Default()
			cfg.Graphics.Width = 1024
			cfg.Scene.Scroll.Camera.Z.Coef = -0.04

			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo: %v", err)
			}

			loaded := Default()
			if err := loadFromFile(loaded, path); err != nil {
				t.Fatalf("loading saved config: %v", err)
			}
			if loaded.Graphics.Width != 1024 {
				t.Errorf("expected width 1024, got %d", loaded.Graphics.Width)
			}
			if loaded.Scene.Scroll.Camera.Z.Coef != -0.04 {
				t.Errorf("expected coef -0.04, got %v", loaded.Scene.Scroll.Camera.Z.Coef)
			}
		})
	}
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("graphics:\n  width: 1024\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			if cfg.Graphics.Width == 1024 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}
}
