// Package config handles application configuration loading and management.
package config

import (
	"github.com/Faultbox/planetfolio/internal/engine/lighting"
	"github.com/Faultbox/planetfolio/internal/intro"
	"github.com/Faultbox/planetfolio/internal/page"
	"github.com/Faultbox/planetfolio/internal/scrollmap"
)

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
	Scene    SceneConfig    `yaml:"scene" toml:"scene"`
	Page     PageConfig     `yaml:"page" toml:"page"`
	Assets   AssetsConfig   `yaml:"assets" toml:"assets"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Title      string  `yaml:"title" toml:"title"`
	Width      int     `yaml:"width" toml:"width"`
	Height     int     `yaml:"height" toml:"height"`
	Fullscreen bool    `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool    `yaml:"vsync" toml:"vsync"`
	FOV        float32 `yaml:"fov" toml:"fov"` // vertical, degrees
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// SceneConfig describes the 3D scene and its motion.
type SceneConfig struct {
	// CameraX is the camera's x position during the intro.
	CameraX float32    `yaml:"camera_x" toml:"camera_x"`
	Target  [3]float32 `yaml:"target" toml:"target"`
	// Primary is the body turned during the intro.
	Primary    string           `yaml:"primary" toml:"primary"`
	SkipIntro  bool             `yaml:"skip_intro" toml:"skip_intro"`
	Intro      intro.Config     `yaml:"intro" toml:"intro"`
	Scroll     scrollmap.Config `yaml:"scroll" toml:"scroll"`
	Bodies     []BodyConfig     `yaml:"bodies" toml:"bodies"`
	Stars      StarsConfig      `yaml:"stars" toml:"stars"`
	Light      lighting.Sun     `yaml:"light" toml:"light"`
	Background [3]float32       `yaml:"background" toml:"background"`
}

// BodyConfig describes one rotating body.
type BodyConfig struct {
	ID       string     `yaml:"id" toml:"id"`
	Shape    string     `yaml:"shape" toml:"shape"` // cube, sphere or torus
	Position [3]float32 `yaml:"position" toml:"position"`
	Scale    float32    `yaml:"scale" toml:"scale"`
	Color    [3]float32 `yaml:"color" toml:"color"`
	Texture  string     `yaml:"texture" toml:"texture"`
}

// StarsConfig controls the background starfield.
type StarsConfig struct {
	Count  int     `yaml:"count" toml:"count"`
	Spread float32 `yaml:"spread" toml:"spread"`
	Size   float32 `yaml:"size" toml:"size"`
	Seed   uint64  `yaml:"seed" toml:"seed"`
}

// PageConfig holds the scrollable page and its reveal animations.
type PageConfig struct {
	Layout page.Config `yaml:"layout" toml:"layout"`
	// ScrollStep is pixels per wheel notch.
	ScrollStep float32 `yaml:"scroll_step" toml:"scroll_step"`
	// RevealDelay is seconds between a section becoming visible and its
	// entrance animation starting.
	RevealDelay  float64 `yaml:"reveal_delay" toml:"reveal_delay"`
	RevealSpring string  `yaml:"reveal_spring" toml:"reveal_spring"`
	HeaderDelay  float64 `yaml:"header_delay" toml:"header_delay"`
	HeaderSpring string  `yaml:"header_spring" toml:"header_spring"`
}

// AssetsConfig locates textures on disk.
type AssetsConfig struct {
	Dir string `yaml:"dir" toml:"dir"`
	Sky string `yaml:"sky" toml:"sky"`
}

// Default returns a Config with the stock scene.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:  "Welcome to my planet",
			Width:  1280,
			Height: 720,
			VSync:  true,
			FOV:    75,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Scene: SceneConfig{
			Primary: "island",
			Intro:   intro.DefaultConfig(),
			Scroll:  scrollmap.DefaultConfig(),
			Bodies: []BodyConfig{
				{ID: "island", Shape: "sphere", Scale: 8, Color: [3]float32{0.35, 0.65, 0.35}},
				{ID: "shepherd", Shape: "sphere", Position: [3]float32{20, 40, 40}, Scale: 4, Color: [3]float32{0.85, 0.55, 0.3}},
				{ID: "donut", Shape: "torus", Position: [3]float32{-50, 50, 70}, Scale: 6, Color: [3]float32{0.9, 0.45, 0.7}},
				{ID: "me", Shape: "cube", Position: [3]float32{-20, 20, 30}, Scale: 5, Color: [3]float32{1, 1, 1}, Texture: "Me.jpg"},
			},
			Stars: StarsConfig{
				Count:  400,
				Spread: 300,
				Size:   0.25,
				Seed:   1,
			},
			Light:      lighting.DefaultSun(),
			Background: [3]float32{0.02, 0.03, 0.08},
		},
		Page: PageConfig{
			Layout: page.Config{
				ViewportHeight: 720,
				Gap:            120,
				Sections: []page.Section{
					{ID: "cyber-detective", Title: "Cyber Detective", Side: page.SideLeft, Height: 560},
					{ID: "spurpunk", Title: "Spurpunk", Side: page.SideRight, Height: 560},
					{ID: "tai-chi-master", Title: "Tai-Chi Master", Side: page.SideLeft, Height: 560},
				},
			},
			ScrollStep:   60,
			RevealDelay:  0.2,
			RevealSpring: "wobbly",
			HeaderDelay:  3,
			HeaderSpring: "slow",
		},
		Assets: AssetsConfig{
			Dir: "assets",
			Sky: "SimpleSky.png",
		},
	}
}
