package metadata

import (
	"image"
	"image/color"
	"image/png"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/pkg/bufferpool"
)

const (
	CoinCanvasSize = 500
	CoinPadding    = 3
	coinRingWidth  = 24
)

var (
	darkRing  = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	lightRing = color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
)

// RenderCoin draws the coin of a colour: a disc of the colour with a ring, on a transparent canvas.
func RenderCoin(c Colour) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, CoinCanvasSize, CoinCanvasSize))
	fill := color.NRGBA{R: c.Red, G: c.Green, B: c.Blue, A: 0xff}
	ring := lightRing
	if c.IsLight() {
		ring = darkRing
	}

	center := float64(CoinCanvasSize) / 2
	outer := center - CoinPadding
	inner := outer - coinRingWidth
	for y := 0; y < CoinCanvasSize; y++ {
		for x := 0; x < CoinCanvasSize; x++ {
			dx, dy := float64(x)+0.5-center, float64(y)+0.5-center
			d2 := dx*dx + dy*dy
			switch {
			case d2 <= inner*inner:
				img.SetNRGBA(x, y, fill)
			case d2 <= outer*outer:
				img.SetNRGBA(x, y, ring)
			}
		}
	}
	return img
}

// EncodeCoinPNG renders the coin of a colour as PNG.
func EncodeCoinPNG(c Colour) ([]byte, error) {
	buf := bufferpool.Get()
	defer buf.Release()
	if err := png.Encode(buf, RenderCoin(c)); err != nil {
		return nil, errors.Wrap(err, "failed to encode coin image")
	}
	return buf.Clone(), nil
}
