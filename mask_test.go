package lottie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSetGet(t *testing.T) {
	m := NewMask(4, 4)
	m.Set(1, 1, 200)
	assert.Equal(t, uint8(200), m.At(1, 1))
	assert.Equal(t, uint8(0), m.At(0, 0))
}

func TestMaskOutOfBounds(t *testing.T) {
	m := NewMask(4, 4)
	m.Set(-1, 0, 100)
	assert.Equal(t, uint8(0), m.At(-1, 0))
	assert.Equal(t, uint8(0), m.At(10, 10))
}

func TestMaskInvert(t *testing.T) {
	m := NewMask(2, 2)
	m.Fill(100)
	m.Invert()
	assert.Equal(t, uint8(155), m.At(0, 0))
}

func TestMaskApplyAlphaInv(t *testing.T) {
	m := NewMask(2, 2)
	m.Set(0, 0, 255)
	assert.Equal(t, uint8(0), m.Apply(MatteAlphaInv, 255, 0, 0))
	assert.Equal(t, uint8(255), m.Apply(MatteAlpha, 255, 0, 0))
	assert.Equal(t, uint8(255), m.Apply(MatteNone, 255, 0, 0))
}
