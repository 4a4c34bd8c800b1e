// Package scrollmap maps a page scroll offset to scene transforms.
//
// The offset is the page top's position relative to the viewport top: it is
// zero at rest and grows negative as the page scrolls down.
package scrollmap

import "github.com/Faultbox/planetfolio/pkg/math"

// Axis is an affine function of the scroll offset.
type Axis struct {
	Base float32 `yaml:"base" toml:"base"`
	Coef float32 `yaml:"coef" toml:"coef"`
}

// At evaluates the axis at offset.
func (a Axis) At(offset float32) float32 {
	return a.Base + a.Coef*offset
}

// CameraCoefficients maps the offset to a camera position.
type CameraCoefficients struct {
	X Axis `yaml:"x" toml:"x"`
	Y Axis `yaml:"y" toml:"y"`
	Z Axis `yaml:"z" toml:"z"`
}

// BodyCoefficients maps the offset to one body's rotation.
// Axes left zero do not rotate.
type BodyCoefficients struct {
	ID    string `yaml:"id" toml:"id"`
	Pitch Axis   `yaml:"pitch" toml:"pitch"`
	Yaw   Axis   `yaml:"yaw" toml:"yaw"`
	Roll  Axis   `yaml:"roll" toml:"roll"`
}

// Bounds optionally clamps the offset before mapping.
// A zero Bounds disables clamping.
type Bounds struct {
	Min float32 `yaml:"min" toml:"min"`
	Max float32 `yaml:"max" toml:"max"`
}

func (b Bounds) enabled() bool {
	return b.Min < b.Max
}

// Clamp limits offset to the bounds when they are enabled.
func (b Bounds) Clamp(offset float32) float32 {
	if !b.enabled() {
		return offset
	}
	if offset < b.Min {
		return b.Min
	}
	if offset > b.Max {
		return b.Max
	}
	return offset
}

// Config is the full coefficient set.
type Config struct {
	Camera CameraCoefficients `yaml:"camera" toml:"camera"`
	Bodies []BodyCoefficients `yaml:"bodies" toml:"bodies"`
	Bounds Bounds             `yaml:"bounds" toml:"bounds"`
}

// DefaultConfig returns the stock coefficients for the four-body scene.
func DefaultConfig() Config {
	const spin = 0.001
	return Config{
		Camera: CameraCoefficients{
			X: Axis{Base: 0, Coef: -0.0002},
			Y: Axis{Base: 20, Coef: -0.01},
			Z: Axis{Base: 30, Coef: -0.025},
		},
		Bodies: []BodyCoefficients{
			{ID: "island", Yaw: Axis{Coef: spin}},
			{ID: "shepherd", Yaw: Axis{Coef: spin}, Roll: Axis{Coef: spin}},
			{ID: "me", Yaw: Axis{Coef: spin}, Roll: Axis{Coef: spin}},
			{ID: "donut", Yaw: Axis{Coef: spin}, Roll: Axis{Coef: spin}},
		},
	}
}

// BodyPose is one body's mapped rotation.
type BodyPose struct {
	ID       string
	Rotation math.Vec3
}

// Pose is the mapper output for one offset.
type Pose struct {
	Camera math.Vec3
	Bodies []BodyPose
}

// Mapper evaluates a Config. It keeps no state between calls.
type Mapper struct {
	cfg Config
}

// New creates a mapper. The coefficient slice is copied.
func New(cfg Config) *Mapper {
	cfg.Bodies = append([]BodyCoefficients(nil), cfg.Bodies...)
	return &Mapper{cfg: cfg}
}

// Config returns a copy of the mapper's configuration.
func (m *Mapper) Config() Config {
	cfg := m.cfg
	cfg.Bodies = append([]BodyCoefficients(nil), m.cfg.Bodies...)
	return cfg
}

// Map returns the transforms for offset.
func (m *Mapper) Map(offset float32) Pose {
	s := m.cfg.Bounds.Clamp(offset)
	pose := Pose{
		Camera: math.Vec3{
			X: m.cfg.Camera.X.At(s),
			Y: m.cfg.Camera.Y.At(s),
			Z: m.cfg.Camera.Z.At(s),
		},
		Bodies: make([]BodyPose, len(m.cfg.Bodies)),
	}
	for i, b := range m.cfg.Bodies {
		pose.Bodies[i] = BodyPose{
			ID: b.ID,
			Rotation: math.Vec3{
				X: b.Pitch.At(s),
				Y: b.Yaw.At(s),
				Z: b.Roll.At(s),
			},
		}
	}
	return pose
}
