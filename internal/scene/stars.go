package scene

import (
	"math/rand/v2"

	"github.com/Faultbox/planetfolio/pkg/math"
)

// GenerateStars scatters count points uniformly in a cube of edge spread
// centered at the origin. The same seed always yields the same field.
func GenerateStars(count int, spread float32, seed uint64) []math.Vec3 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	half := spread / 2
	stars := make([]math.Vec3, count)
	for i := range stars {
		stars[i] = math.Vec3{
			X: rng.Float32()*spread - half,
			Y: rng.Float32()*spread - half,
			Z: rng.Float32()*spread - half,
		}
	}
	return stars
}
