// Package camera provides the user-facing view controls for the scene camera.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/planetfolio/internal/rig"
	"github.com/Faultbox/planetfolio/pkg/math"
)

// OrbitControl orbits the view around the camera target by mouse drag.
// It starts disabled; the scene enables it when the intro ends. The orbit
// is applied on top of the rig camera, so scroll-driven camera motion and
// manual orbiting compose.
type OrbitControl struct {
	enabled bool

	// Yaw and Pitch are the accumulated drag offsets in radians.
	Yaw   float32
	Pitch float32

	// Elevation limits for the resulting view (radians above the target's
	// horizontal plane).
	MinElevation float32
	MaxElevation float32

	DragSensitivity float32
}

// NewOrbitControl creates a disabled orbit control with default settings.
func NewOrbitControl() *OrbitControl {
	return &OrbitControl{
		MinElevation:    -1.4,
		MaxElevation:    1.4,
		DragSensitivity: 0.005,
	}
}

// Enable turns on drag handling.
func (c *OrbitControl) Enable() {
	c.enabled = true
}

// Enabled reports whether drags are applied.
func (c *OrbitControl) Enabled() bool {
	return c.enabled
}

// HandleDrag updates the orbit from a mouse drag delta in pixels.
func (c *OrbitControl) HandleDrag(deltaX, deltaY float32) {
	if !c.enabled {
		return
	}
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
}

// Eye returns the orbited eye position for a camera at position looking at
// target.
func (c *OrbitControl) Eye(position, target math.Vec3) math.Vec3 {
	if c.Yaw == 0 && c.Pitch == 0 {
		return position
	}
	off := position.Sub(target)
	if off.ApproxEqual(math.Vec3{}, 1e-6) {
		return position
	}
	radius := off.Length()

	azimuth := math32.Atan2(off.X, off.Z) + c.Yaw
	elevation := math32.Asin(off.Y/radius) + c.Pitch
	if elevation < c.MinElevation {
		elevation = c.MinElevation
	}
	if elevation > c.MaxElevation {
		elevation = c.MaxElevation
	}

	horiz := radius * math32.Cos(elevation)
	return math.Vec3{
		X: target.X + horiz*math32.Sin(azimuth),
		Y: target.Y + radius*math32.Sin(elevation),
		Z: target.Z + horiz*math32.Cos(azimuth),
	}
}

// ViewMatrix returns the view matrix for cam with the orbit applied.
func (c *OrbitControl) ViewMatrix(cam rig.Camera) math.Mat4 {
	eye := c.Eye(cam.Position, cam.Target)
	return math.LookAt(eye, cam.Target, math.Vec3{Y: 1})
}
