package scrollmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraAtOffset(t *testing.T) {
	m := New(DefaultConfig())

	p := m.Map(-1000)
	assert.InDelta(t, 55, p.Camera.Z, 1e-4)
	assert.InDelta(t, 30, p.Camera.Y, 1e-4)
	assert.InDelta(t, 0.2, p.Camera.X, 1e-5)

	rest := m.Map(0)
	assert.Equal(t, float32(30), rest.Camera.Z)
	assert.Equal(t, float32(20), rest.Camera.Y)
	assert.Equal(t, float32(0), rest.Camera.X)
}

func TestMapIsPure(t *testing.T) {
	m := New(DefaultConfig())
	for _, s := range []float32{0, -1, -250.5, -1000, 400, -1e6} {
		a := m.Map(s)
		m.Map(s * 3)
		b := m.Map(s)
		assert.Equal(t, a, b, "offset %v", s)
	}
}

func TestMapAffineLaw(t *testing.T) {
	m := New(DefaultConfig())
	zero := m.Map(0)

	for _, s := range []float32{-1, -100, -640, -1000, 250} {
		one := m.Map(s)
		two := m.Map(2 * s)

		assert.InDelta(t, 2*one.Camera.X-zero.Camera.X, two.Camera.X, 1e-3)
		assert.InDelta(t, 2*one.Camera.Y-zero.Camera.Y, two.Camera.Y, 1e-3)
		assert.InDelta(t, 2*one.Camera.Z-zero.Camera.Z, two.Camera.Z, 1e-3)

		require.Len(t, two.Bodies, len(zero.Bodies))
		for i := range two.Bodies {
			want := one.Bodies[i].Rotation.Scale(2).Sub(zero.Bodies[i].Rotation)
			assert.True(t, two.Bodies[i].Rotation.ApproxEqual(want, 1e-5),
				"body %s at %v: got %v want %v", two.Bodies[i].ID, s, two.Bodies[i].Rotation, want)
		}
	}
}

func TestBodyAxes(t *testing.T) {
	m := New(DefaultConfig())
	p := m.Map(-1000)

	byID := map[string]BodyPose{}
	for _, b := range p.Bodies {
		byID[b.ID] = b
	}

	island := byID["island"]
	assert.InDelta(t, -1, island.Rotation.Y, 1e-5)
	assert.Equal(t, float32(0), island.Rotation.Z)
	assert.Equal(t, float32(0), island.Rotation.X)

	donut := byID["donut"]
	assert.InDelta(t, -1, donut.Rotation.Y, 1e-5)
	assert.InDelta(t, -1, donut.Rotation.Z, 1e-5)
}

func TestBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bounds = Bounds{Min: -2000, Max: 0}
	m := New(cfg)

	assert.Equal(t, m.Map(-2000), m.Map(-1e9))
	assert.Equal(t, m.Map(0), m.Map(500))

	// Zero bounds do not clamp
	free := New(DefaultConfig())
	assert.InDelta(t, 30+25_000.0, free.Map(-1e6).Camera.Z, 1)
}

func TestConfigIsCopied(t *testing.T) {
	cfg := DefaultConfig()
	m := New(cfg)
	cfg.Bodies[0].Yaw.Coef = 99

	got := m.Config()
	assert.Equal(t, float32(0.001), got.Bodies[0].Yaw.Coef)

	got.Bodies[0].Yaw.Coef = 42
	assert.Equal(t, float32(0.001), m.Config().Bodies[0].Yaw.Coef)
}
