// Package spring drives damped-spring animations toward numeric targets.
package spring

import "github.com/chewxy/math32"

const (
	// step is the fixed integration step in seconds.
	step = 0.001
	// maxFrame bounds the time consumed by one Advance call so a stalled
	// frame does not turn into thousands of substeps.
	maxFrame = 0.25
)

// Config holds the spring physics parameters.
type Config struct {
	Tension   float32 `yaml:"tension" toml:"tension"`
	Friction  float32 `yaml:"friction" toml:"friction"`
	Mass      float32 `yaml:"mass" toml:"mass"`
	Precision float32 `yaml:"precision" toml:"precision"`
}

// Presets.
var (
	Default = Config{Tension: 170, Friction: 26, Mass: 1, Precision: 0.001}
	Slow    = Config{Tension: 280, Friction: 60, Mass: 1, Precision: 0.001}
	Wobbly  = Config{Tension: 180, Friction: 12, Mass: 1, Precision: 0.001}
)

// Preset looks up a preset by name.
func Preset(name string) (Config, bool) {
	switch name {
	case "default", "":
		return Default, true
	case "slow":
		return Slow, true
	case "wobbly":
		return Wobbly, true
	}
	return Config{}, false
}

// Spring animates one value toward a target.
type Spring struct {
	cfg      Config
	value    float32
	velocity float32
	target   float32

	pending    bool
	pendTarget float32
	delay      float64
	accum      float64
}

// New creates a spring resting at value.
func New(cfg Config, value float32) *Spring {
	if cfg.Mass <= 0 {
		cfg.Mass = 1
	}
	if cfg.Precision <= 0 {
		cfg.Precision = Default.Precision
	}
	return &Spring{cfg: cfg, value: value, target: value}
}

// Set retargets the spring immediately.
func (s *Spring) Set(target float32) {
	s.pending = false
	s.target = target
}

// SetAfter retargets the spring once delay seconds have passed.
func (s *Spring) SetAfter(target float32, delay float64) {
	if delay <= 0 {
		s.Set(target)
		return
	}
	s.pending = true
	s.pendTarget = target
	s.delay = delay
}

// Value returns the current value.
func (s *Spring) Value() float32 {
	return s.value
}

// Target returns the target the spring is heading to, including a
// delayed one.
func (s *Spring) Target() float32 {
	if s.pending {
		return s.pendTarget
	}
	return s.target
}

// AtRest reports whether the spring has settled on its target with no
// delayed retarget outstanding.
func (s *Spring) AtRest() bool {
	return !s.pending && s.value == s.target && s.velocity == 0
}

// Advance moves the simulation forward by dt seconds.
func (s *Spring) Advance(dt float64) {
	if !(dt > 0) {
		return
	}
	if dt > maxFrame {
		dt = maxFrame
	}
	if s.pending {
		if dt < s.delay {
			s.delay -= dt
			return
		}
		dt -= s.delay
		s.delay = 0
		s.pending = false
		s.target = s.pendTarget
	}
	if s.value == s.target && s.velocity == 0 {
		s.accum = 0
		return
	}

	s.accum += dt
	for s.accum >= step {
		s.accum -= step
		s.integrate(step)
		if s.settled() {
			s.value = s.target
			s.velocity = 0
			s.accum = 0
			return
		}
	}
}

func (s *Spring) integrate(h float32) {
	force := -s.cfg.Tension*(s.value-s.target) - s.cfg.Friction*s.velocity
	s.velocity += force / s.cfg.Mass * h
	s.value += s.velocity * h
}

func (s *Spring) settled() bool {
	return math32.Abs(s.velocity) < s.cfg.Precision &&
		math32.Abs(s.target-s.value) < s.cfg.Precision
}
