package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorBasics(t *testing.T) {
	t.Run("subtraction", func(t *testing.T) {
		d := Point{3, 5}.Sub(Point{1, 2})
		assert.Equal(t, Point{2, 3}, d)
	})

	t.Run("dot product", func(t *testing.T) {
		assert.Equal(t, 11.0, Point{1, 2}.Dot(Point{3, 4}))
		assert.Equal(t, 0.0, Point{1, 0}.Dot(Point{0, 1}))
	})

	t.Run("magnitude", func(t *testing.T) {
		assert.Equal(t, 5.0, Point{3, 4}.Magnitude())
		assert.Equal(t, 0.0, Point{}.Magnitude())
	})
}

func TestAngleAt(t *testing.T) {
	t.Run("right angle", func(t *testing.T) {
		angle := AngleAt(Point{1, 0}, Point{}, Point{0, 1})
		assert.InDelta(t, math.Pi/2, angle, 1e-15)
	})

	t.Run("collinear rays on the same side give zero", func(t *testing.T) {
		angle := AngleAt(Point{1, 0}, Point{}, Point{2, 0})
		assert.InDelta(t, 0, angle, 1e-15)
	})

	t.Run("opposite rays give a straight angle", func(t *testing.T) {
		angle := AngleAt(Point{-1, 0}, Point{}, Point{1, 0})
		assert.InDelta(t, math.Pi, angle, 1e-15)
	})

	t.Run("does not care about ray length", func(t *testing.T) {
		small := AngleAt(Point{1, 2}, Point{}, Point{3, 1})
		big := AngleAt(Point{10, 20}, Point{}, Point{30, 10})
		assert.InDelta(t, small, big, 1e-12)
	})

	t.Run("degenerate ray gives NaN, not a panic", func(t *testing.T) {
		angle := AngleAt(Point{1, 1}, Point{1, 1}, Point{2, 2})
		assert.True(t, math.IsNaN(angle))
	})
}

func TestAngleConversions(t *testing.T) {
	assert.InDelta(t, 180, Degrees(math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, Radians(180), 1e-15)
	assert.InDelta(t, 1.0, Radians(Degrees(1.0)), 1e-15)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, 1+Tolerance/2))
	assert.False(t, Equal(1, 1+Tolerance*2))
}
