// Package rig holds the camera and the rotating bodies whose transforms the
// scene controller mutates.
package rig

import "github.com/Faultbox/planetfolio/pkg/math"

// Camera is the scene camera. Target is the point it looks at.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
}

// Body is a renderable object with a mutable rotation.
// Rotation holds pitch (X), yaw (Y) and roll (Z) in radians.
type Body struct {
	ID       string
	Shape    string
	Position math.Vec3
	Rotation math.Vec3
	Scale    float32
	Color    [3]float32
	Texture  uint32
}

// Rig owns the camera and the body slots of a scene.
// Slots are declared up front and attached once their assets are ready.
type Rig struct {
	camera *Camera
	order  []string
	bodies map[string]*Body
}

// New creates a rig around the given camera.
func New(camera Camera) *Rig {
	return &Rig{
		camera: &camera,
		bodies: make(map[string]*Body),
	}
}

// Camera returns the rig's camera.
func (r *Rig) Camera() *Camera {
	return r.camera
}

// Declare reserves a slot for id. Declaring twice is a no-op.
func (r *Rig) Declare(id string) {
	if _, ok := r.bodies[id]; ok {
		return
	}
	r.order = append(r.order, id)
	r.bodies[id] = nil
}

// Attach fills the slot for b.ID, declaring it if necessary.
func (r *Rig) Attach(b *Body) {
	r.Declare(b.ID)
	r.bodies[b.ID] = b
}

// Body returns the attached body for id.
// It reports false for unknown ids and for slots not yet attached.
func (r *Rig) Body(id string) (*Body, bool) {
	b := r.bodies[id]
	return b, b != nil
}

// Bodies returns attached bodies in declaration order.
func (r *Rig) Bodies() []*Body {
	out := make([]*Body, 0, len(r.order))
	for _, id := range r.order {
		if b := r.bodies[id]; b != nil {
			out = append(out, b)
		}
	}
	return out
}

// Pending returns the ids of declared slots that have no body yet.
func (r *Rig) Pending() []string {
	var out []string
	for _, id := range r.order {
		if r.bodies[id] == nil {
			out = append(out, id)
		}
	}
	return out
}
