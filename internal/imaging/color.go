package imaging

import (
	"fmt"
	"image"
	"image/color"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBAColor represents a non-premultiplied RGBA color with 8-bit components.
// An alpha of 0 is fully transparent and 255 fully opaque.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains a single pixel's color in several representations.
//
// Adjusted images are written as non-premultiplied RGBA, so RGB and RGBA are
// reported unpremultiplied; a half-transparent red reads as (255,0,0,128).
type ColorResult struct {
	Hex  string    `json:"hex"` // "#RRGGBB", alpha excluded
	RGB  RGBColor  `json:"rgb"`
	RGBA RGBAColor `json:"rgba"`
	HSL  HSLColor  `json:"hsl"`
}

// SampleColor returns the color of the pixel at (x, y).
//
// Coordinates are 0-based from the top-left of the image bounds. An error is
// returned when (x, y) falls outside the image.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < 0 || y < 0 || x >= bounds.Dx() || y >= bounds.Dy() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, bounds.Dx(), bounds.Dy())
	}

	c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)

	h, s, l := toColorful(c.R, c.G, c.B).Hsl()

	return &ColorResult{
		Hex:  fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
		RGB:  RGBColor{R: c.R, G: c.G, B: c.B},
		RGBA: RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL: HSLColor{
			H: int(h),
			S: int(s * 100),
			L: int(l * 100),
		},
	}, nil
}

// SampleBuffer reads every channel of the pixel at (x, y) from a converted
// buffer, in the buffer's own color mode.
func SampleBuffer(b *Buffer, x, y int) ([]uint8, error) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return nil, fmt.Errorf("coordinates (%d,%d) outside buffer bounds %dx%d", x, y, b.Width, b.Height)
	}

	n := b.Channels()
	out := make([]uint8, n)
	for ch := 0; ch < n; ch++ {
		out[ch] = b.At(x, y, ch)
	}
	return out, nil
}
