package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrEmptyImage is returned when an image has no pixels to convert.
var ErrEmptyImage = errors.New("image has no pixels")

// FromImage converts img into a Buffer in the given color mode.
//
// The source is first normalized to non-premultiplied 8-bit RGBA. Its alpha
// channel is kept only when mode is RGBA; every other mode drops it.
//
// # Channel Encodings
//
// Each mode stores its channels as bytes:
//   - RGB, RGBA: straight 8-bit components
//   - YCbCr: JFIF full-range Y, Cb, Cr
//   - LAB: L scaled from 0-100 to 0-255; a and b offset by 128 (D65)
//   - HSV: hue scaled from 0-360 to 0-255; S and V scaled from 0-1 to 0-255
//
// Values are rounded to nearest and clamped to 0-255. CYMK has no encoding
// and always fails with ErrUnsupportedMode.
func FromImage(img image.Image, mode ColorMode) (*Buffer, error) {
	if !mode.Convertible() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	// Clone always returns bounds anchored at (0,0) with Stride == 4*width.
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	buf := NewBuffer(mode, w, h)
	n := buf.Channels()
	for i := 0; i < w*h; i++ {
		s := src.Pix[i*4 : i*4+4]
		encodePixel(mode, buf.Pix[i*n:i*n+n], s[0], s[1], s[2], s[3])
	}
	return buf, nil
}

// ToNRGBA converts the buffer back into a 4-channel non-premultiplied RGBA
// image. Alpha is 255 for every mode except RGBA, which carries its own.
func (b *Buffer) ToNRGBA() (*image.NRGBA, error) {
	if !b.Mode.Convertible() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, b.Mode)
	}
	n := b.Channels()
	if b.Width <= 0 || b.Height <= 0 {
		return nil, ErrEmptyImage
	}
	if len(b.Pix) != b.Width*b.Height*n {
		return nil, fmt.Errorf("buffer holds %d values, want %d", len(b.Pix), b.Width*b.Height*n)
	}

	out := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i := 0; i < b.Width*b.Height; i++ {
		r, g, bl, a := decodePixel(b.Mode, b.Pix[i*n:i*n+n])
		d := out.Pix[i*4 : i*4+4]
		d[0], d[1], d[2], d[3] = r, g, bl, a
	}
	return out, nil
}

func encodePixel(mode ColorMode, px []uint8, r, g, b, a uint8) {
	switch mode {
	case ModeRGB:
		px[0], px[1], px[2] = r, g, b
	case ModeRGBA:
		px[0], px[1], px[2], px[3] = r, g, b, a
	case ModeYCbCr:
		px[0], px[1], px[2] = color.RGBToYCbCr(r, g, b)
	case ModeLAB:
		l, la, lb := toColorful(r, g, b).Lab()
		px[0] = clampByte(l * 255)
		px[1] = clampByte(la*100 + 128)
		px[2] = clampByte(lb*100 + 128)
	case ModeHSV:
		h, s, v := toColorful(r, g, b).Hsv()
		px[0] = clampByte(h / 360 * 255)
		px[1] = clampByte(s * 255)
		px[2] = clampByte(v * 255)
	}
}

func decodePixel(mode ColorMode, px []uint8) (r, g, b, a uint8) {
	a = 255
	switch mode {
	case ModeRGB:
		r, g, b = px[0], px[1], px[2]
	case ModeRGBA:
		r, g, b, a = px[0], px[1], px[2], px[3]
	case ModeYCbCr:
		r, g, b = color.YCbCrToRGB(px[0], px[1], px[2])
	case ModeLAB:
		c := colorful.Lab(float64(px[0])/255, (float64(px[1])-128)/100, (float64(px[2])-128)/100)
		r, g, b = c.Clamped().RGB255()
	case ModeHSV:
		hue := float64(px[0]) / 255 * 360
		if hue >= 360 {
			hue -= 360
		}
		c := colorful.Hsv(hue, float64(px[1])/255, float64(px[2])/255)
		r, g, b = c.Clamped().RGB255()
	}
	return r, g, b, a
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// clampByte rounds v to nearest and clamps it into 0-255.
func clampByte(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
