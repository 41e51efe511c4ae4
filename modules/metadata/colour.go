package metadata

import (
	"math"

	"github.com/gaze-network/rainbow-minter/modules/minter"
)

// Colour is the colour of a token, computed from its id.
type Colour struct {
	Hex        string
	Red        uint8
	Green      uint8
	Blue       uint8
	Hue        int
	Saturation int
	Value      int
	Luminance  float64
}

func NewColour(id minter.TokenID) Colour {
	r, g, b := id.RGB()
	h, s, v := HSV(r, g, b)
	return Colour{
		Hex:        id.Hex(),
		Red:        r,
		Green:      g,
		Blue:       b,
		Hue:        h,
		Saturation: s,
		Value:      v,
		Luminance:  Luminance(r, g, b),
	}
}

// IsLight reports whether the coin of this colour gets a dark ring.
func (c Colour) IsLight() bool {
	return c.Luminance > 30
}

// Luminance returns the perceived brightness of an RGB colour in [0, 255].
func Luminance(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// HSV converts an RGB colour to hue in degrees [0, 360), saturation and value in percent.
func HSV(r, g, b uint8) (hue, saturation, value int) {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	delta := maxC - minC

	var h float64
	switch {
	case delta == 0:
		h = 0
	case maxC == rf:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case maxC == gf:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if maxC > 0 {
		s = delta / maxC
	}
	return int(math.Round(h)) % 360, int(math.Round(s * 100)), int(math.Round(maxC * 100))
}
