// Package lighting provides the scene's directional light.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/planetfolio/pkg/math"
)

// Sun is a directional light placed by angles.
type Sun struct {
	// Longitude is rotation around the Y axis in degrees.
	Longitude float32 `yaml:"longitude" toml:"longitude"`
	// Latitude is elevation above the horizon in degrees.
	Latitude float32 `yaml:"latitude" toml:"latitude"`
	// Ambient is the light level of faces turned away from the sun, 0..1.
	Ambient float32 `yaml:"ambient" toml:"ambient"`
}

// DefaultSun lights the scene from the upper front right.
func DefaultSun() Sun {
	return Sun{Longitude: 35, Latitude: 45, Ambient: 0.55}
}

// Direction returns the unit vector pointing towards the sun.
func (s Sun) Direction() math.Vec3 {
	lon := s.Longitude * math32.Pi / 180
	lat := s.Latitude * math32.Pi / 180
	return math.Vec3{
		X: math32.Cos(lat) * math32.Sin(lon),
		Y: math32.Sin(lat),
		Z: math32.Cos(lat) * math32.Cos(lon),
	}
}
