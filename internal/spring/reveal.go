package spring

// Reveal is the entrance animation of a page element: scale and opacity
// both spring from 0 to 1.
type Reveal struct {
	scale   *Spring
	opacity *Spring
}

// NewReveal creates a hidden reveal animation.
func NewReveal(cfg Config) *Reveal {
	return &Reveal{
		scale:   New(cfg, 0),
		opacity: New(cfg, 0),
	}
}

// Show targets the fully visible state after delay seconds. Showing an
// already shown reveal does not restart its delay.
func (r *Reveal) Show(delay float64) {
	if r.scale.Target() == 1 {
		return
	}
	r.scale.SetAfter(1, delay)
	r.opacity.SetAfter(1, delay)
}

// Advance steps both springs.
func (r *Reveal) Advance(dt float64) {
	r.scale.Advance(dt)
	r.opacity.Advance(dt)
}

// Values returns the current scale and opacity. Opacity is clamped to
// [0, 1]; scale may overshoot.
func (r *Reveal) Values() (scale, opacity float32) {
	opacity = r.opacity.Value()
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return r.scale.Value(), opacity
}

// AtRest reports whether both springs have settled.
func (r *Reveal) AtRest() bool {
	return r.scale.AtRest() && r.opacity.AtRest()
}
