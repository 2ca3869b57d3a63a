package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square() []Point {
	return []Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}
}

func TestTrimHalf(t *testing.T) {
	out := Trim(square(), 0, 0.5, 0)
	assert.NotEmpty(t, out)
	assert.Equal(t, Point{X: 0, Y: 0}, out[0])
}

func TestTrimWrapAround(t *testing.T) {
	out := Trim(square(), 0.75, 0.25, 0)
	assert.NotEmpty(t, out)
}

func TestTrimEmptyRange(t *testing.T) {
	out := Trim(square(), 0.3, 0.3, 0)
	assert.Empty(t, out)
}

func TestTrimWithOffset(t *testing.T) {
	a := Trim(square(), 0, 0.25, 0)
	b := Trim(square(), 0.5, 0.75, 0.5)
	assert.Equal(t, len(a), len(b))
}
