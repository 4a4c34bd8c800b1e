package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStarsDeterministic(t *testing.T) {
	a := GenerateStars(400, 300, 7)
	b := GenerateStars(400, 300, 7)
	assert.Equal(t, a, b)
	assert.Len(t, a, 400)

	c := GenerateStars(400, 300, 8)
	assert.NotEqual(t, a, c)
}

func TestGenerateStarsInsideSpread(t *testing.T) {
	for _, s := range GenerateStars(1000, 300, 1) {
		for _, v := range []float32{s.X, s.Y, s.Z} {
			assert.GreaterOrEqual(t, v, float32(-150))
			assert.Less(t, v, float32(150))
		}
	}
}
