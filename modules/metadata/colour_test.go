package metadata

import (
	"testing"

	"github.com/gaze-network/rainbow-minter/modules/minter"
	"github.com/stretchr/testify/assert"
)

func TestHSV(t *testing.T) {
	type testcase struct {
		r, g, b  uint8
		expected [3]int
	}
	testcases := []testcase{
		{r: 0xff, g: 0x00, b: 0x00, expected: [3]int{0, 100, 100}},
		{r: 0x00, g: 0xff, b: 0x00, expected: [3]int{120, 100, 100}},
		{r: 0x00, g: 0x00, b: 0xff, expected: [3]int{240, 100, 100}},
		{r: 0xff, g: 0x80, b: 0x00, expected: [3]int{30, 100, 100}},
		{r: 0xff, g: 0x00, b: 0xff, expected: [3]int{300, 100, 100}},
		{r: 0x80, g: 0x80, b: 0x80, expected: [3]int{0, 0, 50}},
		{r: 0x00, g: 0x00, b: 0x00, expected: [3]int{0, 0, 0}},
	}
	for _, tc := range testcases {
		h, s, v := HSV(tc.r, tc.g, tc.b)
		assert.Equal(t, tc.expected, [3]int{h, s, v}, "rgb(%d,%d,%d)", tc.r, tc.g, tc.b)
	}
}

func TestNewColour(t *testing.T) {
	c := NewColour(minter.TokenID(0xFF8000))
	assert.Equal(t, "FF8000", c.Hex)
	assert.Equal(t, uint8(0xff), c.Red)
	assert.Equal(t, uint8(0x80), c.Green)
	assert.Equal(t, uint8(0x00), c.Blue)
	assert.Equal(t, 30, c.Hue)
	assert.InDelta(t, 0.299*255+0.587*128, c.Luminance, 1e-9)
	assert.True(t, c.IsLight())

	assert.InDelta(t, 255, Luminance(0xff, 0xff, 0xff), 1e-9)
	assert.False(t, NewColour(minter.TokenID(0x000010)).IsLight())
	assert.False(t, NewColour(0).IsLight())
}
