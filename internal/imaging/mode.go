package imaging

import (
	"errors"
	"fmt"
)

// ColorMode names the color model an image is converted into before one of
// its channels is adjusted. The string value is the wire name used by hosts.
type ColorMode string

// Supported color modes.
const (
	ModeRGB   ColorMode = "RGB"
	ModeRGBA  ColorMode = "RGBA"
	ModeCYMK  ColorMode = "CYMK" // accepted by name, never convertible
	ModeYCbCr ColorMode = "YCbCr"
	ModeLAB   ColorMode = "LAB"
	ModeHSV   ColorMode = "HSV"
)

// ErrUnsupportedMode is returned for a color mode outside the fixed set.
var ErrUnsupportedMode = errors.New("unsupported color mode")

var modeChannels = map[ColorMode]int{
	ModeRGB:   3,
	ModeRGBA:  4,
	ModeCYMK:  4,
	ModeYCbCr: 3,
	ModeLAB:   3,
	ModeHSV:   3,
}

// Modes returns every supported color mode in a stable order.
func Modes() []ColorMode {
	return []ColorMode{ModeRGB, ModeRGBA, ModeCYMK, ModeYCbCr, ModeLAB, ModeHSV}
}

// ParseColorMode converts a wire name into a ColorMode. Names are case-sensitive.
func ParseColorMode(s string) (ColorMode, error) {
	m := ColorMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
	return m, nil
}

// Valid reports whether m is one of the supported modes.
func (m ColorMode) Valid() bool {
	_, ok := modeChannels[m]
	return ok
}

// Convertible reports whether images can be converted into m. CYMK is a
// valid mode name with no color model behind it, so every conversion into
// it fails with ErrUnsupportedMode.
func (m ColorMode) Convertible() bool {
	return m.Valid() && m != ModeCYMK
}

// Channels returns the number of 8-bit channels per pixel in mode m, or 0
// for an unsupported mode.
func (m ColorMode) Channels() int {
	return modeChannels[m]
}

func (m ColorMode) String() string {
	return string(m)
}
