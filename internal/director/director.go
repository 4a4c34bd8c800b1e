// Package director runs the scene controller: it receives frame, scroll and
// visibility messages and applies the intro, scroll and reveal rules to the
// scene rig.
package director

import (
	"go.uber.org/zap"

	"github.com/Faultbox/planetfolio/internal/intro"
	"github.com/Faultbox/planetfolio/internal/logger"
	"github.com/Faultbox/planetfolio/internal/reveal"
	"github.com/Faultbox/planetfolio/internal/rig"
	"github.com/Faultbox/planetfolio/internal/scrollmap"
)

// Hooks receives the one-time side effects of leaving the intro.
type Hooks interface {
	EnableScroll()
	EnableOrbit()
}

// Animator runs the entrance animation of a revealed section.
type Animator interface {
	Reveal(section string)
}

// State is the controller state after handling an event.
type State struct {
	Phase intro.Phase
	// Entered is set on the event that ended the intro.
	Entered bool
	// Revealed names the section revealed by this event, if any.
	Revealed string
}

// Config holds the director's own settings.
type Config struct {
	// Primary is the body turned by the intro.
	Primary string
}

// Director owns the controller state. All methods must be called from the
// goroutine that owns the rig.
type Director struct {
	cfg     Config
	rig     *rig.Rig
	seq     *intro.Sequencer
	mapper  *scrollmap.Mapper
	reveals *reveal.Set
	hooks   Hooks

	phase  intro.Phase
	offset float32
}

// New creates a director in the intro phase. hooks and animator may be nil.
func New(cfg Config, r *rig.Rig, seq *intro.Sequencer, mapper *scrollmap.Mapper, reveals *reveal.Set, hooks Hooks, animator Animator) *Director {
	d := &Director{
		cfg:     cfg,
		rig:     r,
		seq:     seq,
		mapper:  mapper,
		reveals: reveals,
		hooks:   hooks,
		phase:   intro.PhaseIntro,
	}
	if animator != nil {
		reveals.OnReveal(animator.Reveal)
	}
	d.applyIntro(seq.Start())
	logger.Debug("intro started",
		zap.String("primary", cfg.Primary),
		zap.Float64("settle_time", seq.SettleTime()),
	)
	return d
}

// Phase returns the current phase.
func (d *Director) Phase() intro.Phase {
	return d.phase
}

// Handle processes one event.
func (d *Director) Handle(ev Event) State {
	switch e := ev.(type) {
	case FrameEvent:
		return d.handleFrame(e)
	case ScrollEvent:
		return d.handleScroll(e)
	case VisibilityEvent:
		return d.handleVisibility(e)
	}
	return State{Phase: d.phase}
}

func (d *Director) handleFrame(e FrameEvent) State {
	res := d.seq.Step(d.phase, e.Elapsed)
	if res.Active {
		d.applyIntro(res.Pose)
	}
	if res.Entered {
		d.enter(e.Elapsed)
	}
	return State{Phase: d.phase, Entered: res.Entered}
}

func (d *Director) handleScroll(e ScrollEvent) State {
	if d.phase != intro.PhaseInteractive {
		return State{Phase: d.phase}
	}
	d.offset = e.Offset
	d.applyScroll(d.mapper.Map(e.Offset))
	return State{Phase: d.phase}
}

func (d *Director) handleVisibility(e VisibilityEvent) State {
	st := State{Phase: d.phase}
	if !d.reveals.Observe(e.Section, e.Visible) {
		return st
	}
	logger.Info("section revealed", zap.String("section", e.Section))
	st.Revealed = e.Section
	return st
}

// SkipIntro jumps to the resting pose and ends the intro.
func (d *Director) SkipIntro() State {
	if d.phase != intro.PhaseIntro {
		return State{Phase: d.phase}
	}
	d.applyIntro(d.seq.Rest())
	d.enter(-1)
	return State{Phase: d.phase, Entered: true}
}

// SetMapper swaps the scroll coefficients. In the interactive phase the
// new mapping is applied at the last seen offset.
func (d *Director) SetMapper(m *scrollmap.Mapper) {
	d.mapper = m
	if d.phase == intro.PhaseInteractive {
		d.applyScroll(m.Map(d.offset))
	}
}

// Resync re-applies the current scroll pose. Call it after bodies are
// attached to the rig so late arrivals pick up the mapped rotation. It does
// nothing during the intro; the next frame covers that.
func (d *Director) Resync() {
	if d.phase == intro.PhaseInteractive {
		d.applyScroll(d.mapper.Map(d.offset))
	}
}

func (d *Director) enter(elapsed float64) {
	d.phase = intro.PhaseInteractive
	logger.Info("intro finished",
		zap.Float64("elapsed", elapsed),
		zap.Float32("camera_z", d.rig.Camera().Position.Z),
		zap.Strings("unrevealed", d.reveals.Pending()),
	)
	if d.hooks != nil {
		d.hooks.EnableScroll()
		d.hooks.EnableOrbit()
	}
}

func (d *Director) applyIntro(p intro.Pose) {
	cam := d.rig.Camera()
	cam.Position.Y = p.CameraY
	cam.Position.Z = p.CameraZ
	if b, ok := d.rig.Body(d.cfg.Primary); ok {
		b.Rotation.Y = p.PrimaryYaw
	}
}

func (d *Director) applyScroll(p scrollmap.Pose) {
	d.rig.Camera().Position = p.Camera
	for _, bp := range p.Bodies {
		b, ok := d.rig.Body(bp.ID)
		if !ok {
			continue
		}
		b.Rotation = bp.Rotation
	}
}
