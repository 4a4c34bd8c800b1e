package director

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/planetfolio/internal/intro"
	"github.com/Faultbox/planetfolio/internal/reveal"
	"github.com/Faultbox/planetfolio/internal/rig"
	"github.com/Faultbox/planetfolio/internal/scrollmap"
	"github.com/Faultbox/planetfolio/pkg/math"
)

type countingHooks struct {
	scroll, orbit int
}

func (h *countingHooks) EnableScroll() { h.scroll++ }
func (h *countingHooks) EnableOrbit()  { h.orbit++ }

type recordingAnimator struct {
	shown []string
}

func (a *recordingAnimator) Reveal(section string) { a.shown = append(a.shown, section) }

type fixture struct {
	d        *Director
	rig      *rig.Rig
	hooks    *countingHooks
	animator *recordingAnimator
}

func newFixture(attach ...string) fixture {
	r := rig.New(rig.Camera{})
	for _, id := range []string{"island", "shepherd", "me", "donut"} {
		r.Declare(id)
	}
	for _, id := range attach {
		r.Attach(&rig.Body{ID: id, Scale: 1})
	}
	hooks := &countingHooks{}
	animator := &recordingAnimator{}
	d := New(
		Config{Primary: "island"},
		r,
		intro.NewSequencer(intro.DefaultConfig()),
		scrollmap.New(scrollmap.DefaultConfig()),
		reveal.NewSet("cyber-detective", "spurpunk"),
		hooks,
		animator,
	)
	return fixture{d: d, rig: r, hooks: hooks, animator: animator}
}

func runFrames(d *Director, n int) (entered int) {
	for i := 0; i <= n; i++ {
		if d.Handle(FrameEvent{Elapsed: float64(i) / 60, Delta: 1.0 / 60}).Entered {
			entered++
		}
	}
	return entered
}

func TestStartsAtEstablishingShot(t *testing.T) {
	f := newFixture("island")
	assert.Equal(t, intro.PhaseIntro, f.d.Phase())
	assert.Equal(t, math.Vec3{Y: 50, Z: 80}, f.rig.Camera().Position)

	f.d.Handle(FrameEvent{Elapsed: 0})
	assert.Equal(t, math.Vec3{Y: 50, Z: 80}, f.rig.Camera().Position)
}

func TestIntroEndToEnd(t *testing.T) {
	f := newFixture("island", "shepherd", "me", "donut")

	entered := runFrames(f.d, 10000)

	assert.Equal(t, 1, entered)
	assert.Equal(t, intro.PhaseInteractive, f.d.Phase())
	assert.Equal(t, float32(30), f.rig.Camera().Position.Z)
	assert.Equal(t, float32(20), f.rig.Camera().Position.Y)
	assert.Equal(t, 1, f.hooks.scroll)
	assert.Equal(t, 1, f.hooks.orbit)

	island, ok := f.rig.Body("island")
	require.True(t, ok)
	assert.Equal(t, intro.DefaultConfig().PrimaryYaw.To, island.Rotation.Y)
}

func TestLatchSurvivesRepeatedThresholdCrossing(t *testing.T) {
	f := newFixture("island")
	runFrames(f.d, 600)
	require.Equal(t, intro.PhaseInteractive, f.d.Phase())

	// Move the camera back out past the threshold and replay the intro clock.
	f.rig.Camera().Position.Z = 80
	runFrames(f.d, 600)
	f.d.SkipIntro()

	assert.Equal(t, 1, f.hooks.scroll)
	assert.Equal(t, 1, f.hooks.orbit)
	assert.Equal(t, float32(80), f.rig.Camera().Position.Z)
}

func TestScrollIgnoredDuringIntro(t *testing.T) {
	f := newFixture("island")
	f.d.Handle(ScrollEvent{Offset: -1000})
	assert.Equal(t, float32(80), f.rig.Camera().Position.Z)
}

func TestScrollAfterIntro(t *testing.T) {
	f := newFixture("island", "donut")
	f.d.SkipIntro()

	f.d.Handle(ScrollEvent{Offset: -1000})
	cam := f.rig.Camera().Position
	assert.InDelta(t, 55, cam.Z, 1e-4)
	assert.InDelta(t, 30, cam.Y, 1e-4)

	donut, _ := f.rig.Body("donut")
	assert.InDelta(t, -1, donut.Rotation.Y, 1e-5)
	assert.InDelta(t, -1, donut.Rotation.Z, 1e-5)
}

func TestMissingBodiesAreSkipped(t *testing.T) {
	f := newFixture()
	assert.NotPanics(t, func() {
		runFrames(f.d, 300)
		f.d.Handle(ScrollEvent{Offset: -500})
	})
	assert.Empty(t, f.rig.Bodies())

	// A body attached late picks up the next scroll.
	f.rig.Attach(&rig.Body{ID: "me"})
	f.d.Handle(ScrollEvent{Offset: -500})
	me, _ := f.rig.Body("me")
	assert.InDelta(t, -0.5, me.Rotation.Y, 1e-5)
}

func TestSkipIntro(t *testing.T) {
	f := newFixture("island")
	st := f.d.SkipIntro()
	assert.True(t, st.Entered)
	assert.Equal(t, float32(30), f.rig.Camera().Position.Z)

	st = f.d.SkipIntro()
	assert.False(t, st.Entered)
	assert.Equal(t, 1, f.hooks.scroll)
}

func TestVisibilityRevealsOnce(t *testing.T) {
	f := newFixture()
	var revealed []string
	for _, v := range []bool{false, true, false, true} {
		if st := f.d.Handle(VisibilityEvent{Section: "spurpunk", Visible: v}); st.Revealed != "" {
			revealed = append(revealed, st.Revealed)
		}
	}
	assert.Equal(t, []string{"spurpunk"}, revealed)
	assert.Equal(t, []string{"spurpunk"}, f.animator.shown)
}

func TestSetMapperReappliesAtLastOffset(t *testing.T) {
	f := newFixture()
	f.d.SkipIntro()
	f.d.Handle(ScrollEvent{Offset: -1000})

	cfg := scrollmap.DefaultConfig()
	cfg.Camera.Z = scrollmap.Axis{Base: 40, Coef: -0.01}
	f.d.SetMapper(scrollmap.New(cfg))

	assert.InDelta(t, 50, f.rig.Camera().Position.Z, 1e-4)
}

func TestNilHooks(t *testing.T) {
	r := rig.New(rig.Camera{})
	d := New(Config{}, r, intro.NewSequencer(intro.DefaultConfig()),
		scrollmap.New(scrollmap.DefaultConfig()), reveal.NewSet("a"), nil, nil)
	assert.NotPanics(t, func() {
		d.SkipIntro()
		d.Handle(VisibilityEvent{Section: "a", Visible: true})
	})
}

func TestResyncAppliesToLateBodies(t *testing.T) {
	f := newFixture()
	f.d.SkipIntro()
	f.d.Handle(ScrollEvent{Offset: -200})

	f.rig.Attach(&rig.Body{ID: "shepherd"})
	f.d.Resync()
	shepherd, _ := f.rig.Body("shepherd")
	assert.InDelta(t, -0.2, shepherd.Rotation.Y, 1e-5)
	assert.InDelta(t, -0.2, shepherd.Rotation.Z, 1e-5)
}

func TestResyncDuringIntroLeavesPose(t *testing.T) {
	f := newFixture()
	f.rig.Attach(&rig.Body{ID: "donut", Rotation: math.Vec3{Y: 3}})
	f.d.Resync()
	donut, _ := f.rig.Body("donut")
	assert.Equal(t, float32(3), donut.Rotation.Y)
}
