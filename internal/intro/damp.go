// Package intro implements the camera fly-in that runs before the page
// becomes scrollable.
package intro

import "github.com/chewxy/math32"

// snapFraction is the remaining fraction below which Damp returns the
// target itself.
const snapFraction = 1e-6

// Damp moves from toward to with an exponential (critically damped)
// approach at rate lambda per second, evaluated t seconds after start.
// Non-positive or NaN t yields from; large t yields exactly to.
func Damp(from, to, lambda float32, t float64) float32 {
	if !(t > 0) || !(lambda > 0) {
		return from
	}
	remaining := math32.Exp(-lambda * float32(t))
	if !(remaining > snapFraction) {
		return to
	}
	return from + (to-from)*(1-remaining)
}

// Channel is one damped parameter.
type Channel struct {
	From float32 `yaml:"from" toml:"from"`
	To   float32 `yaml:"to" toml:"to"`
	Rate float32 `yaml:"rate" toml:"rate"`
}

// Value returns the channel value t seconds into the intro.
func (c Channel) Value(t float64) float32 {
	return Damp(c.From, c.To, c.Rate, t)
}
