package intro

import (
	gomath "math"

	"github.com/chewxy/math32"
)

// Phase is the stage of the scene controller.
type Phase int

const (
	// PhaseIntro runs the automatic camera fly-in.
	PhaseIntro Phase = iota
	// PhaseInteractive hands the camera to scroll and orbit input.
	PhaseInteractive
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// Config holds the fly-in parameters.
type Config struct {
	CameraY    Channel `yaml:"camera_y" toml:"camera_y"`
	CameraZ    Channel `yaml:"camera_z" toml:"camera_z"`
	PrimaryYaw Channel `yaml:"primary_yaw" toml:"primary_yaw"`

	// Tolerance is how close camera.z must get to its resting value before
	// the intro settles.
	Tolerance float32 `yaml:"tolerance" toml:"tolerance"`
}

// DefaultConfig returns the stock fly-in: camera from (y 50, z 80) to
// (y 20, z 30) while the primary body turns half a revolution.
func DefaultConfig() Config {
	return Config{
		CameraY:    Channel{From: 50, To: 20, Rate: 1},
		CameraZ:    Channel{From: 80, To: 30, Rate: 1},
		PrimaryYaw: Channel{From: -math32.Pi / 2, To: math32.Pi / 2, Rate: 1},
		Tolerance:  1,
	}
}

// Pose is the intro's output for one frame.
type Pose struct {
	CameraY    float32
	CameraZ    float32
	PrimaryYaw float32
	Settled    bool
}

// Result is the outcome of one Step.
type Result struct {
	Phase Phase
	Pose  Pose
	// Active is set when Pose should be applied this frame.
	Active bool
	// Entered is set only on the step that latched PhaseInteractive.
	Entered bool
}

// Sequencer evaluates the fly-in. It holds configuration only.
type Sequencer struct {
	cfg Config
}

// NewSequencer creates a sequencer for cfg.
func NewSequencer(cfg Config) *Sequencer {
	return &Sequencer{cfg: cfg}
}

// Config returns the sequencer's configuration.
func (s *Sequencer) Config() Config {
	return s.cfg
}

// Start returns the pose at elapsed time zero.
func (s *Sequencer) Start() Pose {
	return Pose{
		CameraY:    s.cfg.CameraY.From,
		CameraZ:    s.cfg.CameraZ.From,
		PrimaryYaw: s.cfg.PrimaryYaw.From,
	}
}

// Rest returns the settled pose.
func (s *Sequencer) Rest() Pose {
	return Pose{
		CameraY:    s.cfg.CameraY.To,
		CameraZ:    s.cfg.CameraZ.To,
		PrimaryYaw: s.cfg.PrimaryYaw.To,
		Settled:    true,
	}
}

// Evaluate returns the pose elapsed seconds into the intro.
// Once camera.z is within tolerance of rest, every channel snaps to rest.
func (s *Sequencer) Evaluate(elapsed float64) Pose {
	z := s.cfg.CameraZ.Value(elapsed)
	if math32.Abs(z-s.cfg.CameraZ.To) <= s.cfg.Tolerance {
		return s.Rest()
	}
	return Pose{
		CameraY:    s.cfg.CameraY.Value(elapsed),
		CameraZ:    z,
		PrimaryYaw: s.cfg.PrimaryYaw.Value(elapsed),
	}
}

// SettleTime returns the elapsed time at which the intro settles: when
// camera.z comes within tolerance, or when Damp snaps it onto rest,
// whichever is first. It is +Inf when camera.z can never settle.
func (s *Sequencer) SettleTime() float64 {
	c := s.cfg.CameraZ
	span := float64(math32.Abs(c.To - c.From))
	tol := float64(s.cfg.Tolerance)
	if span <= tol {
		return 0
	}
	if c.Rate <= 0 || tol < 0 {
		return gomath.Inf(1)
	}
	rate := float64(c.Rate)
	t := gomath.Log(1/snapFraction) / rate
	if tol > 0 {
		t = min(t, gomath.Log(span/tol)/rate)
	}
	return t
}

// Step advances the phase machine for one frame.
// PhaseInteractive is terminal: stepping it never yields an intro pose.
func (s *Sequencer) Step(phase Phase, elapsed float64) Result {
	if phase != PhaseIntro {
		return Result{Phase: phase}
	}
	pose := s.Evaluate(elapsed)
	if !pose.Settled {
		return Result{Phase: PhaseIntro, Pose: pose, Active: true}
	}
	return Result{Phase: PhaseInteractive, Pose: pose, Active: true, Entered: true}
}
