package imaging

import "fmt"

// Buffer is a height × width × channels array of 8-bit values in one color
// mode. Pix is row-major with channels interleaved, so the value of channel
// ch at (x, y) lives at Pix[(y*Width+x)*Channels()+ch].
//
// A Buffer is not safe for concurrent mutation.
type Buffer struct {
	Mode   ColorMode
	Width  int
	Height int
	Pix    []uint8
}

// NewBuffer allocates a zeroed buffer for a width × height image in mode.
func NewBuffer(mode ColorMode, width, height int) *Buffer {
	return &Buffer{
		Mode:   mode,
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*mode.Channels()),
	}
}

// Channels returns the number of values stored per pixel.
func (b *Buffer) Channels() int {
	return b.Mode.Channels()
}

// At returns channel ch of the pixel at (x, y).
func (b *Buffer) At(x, y, ch int) uint8 {
	return b.Pix[(y*b.Width+x)*b.Channels()+ch]
}

// Plane copies channel ch out of the buffer as a width*height slice in
// row-major order.
func (b *Buffer) Plane(ch int) ([]uint8, error) {
	n := b.Channels()
	if ch < 0 || ch >= n {
		return nil, fmt.Errorf("channel %d out of range for %s (%d channels)", ch, b.Mode, n)
	}

	plane := make([]uint8, b.Width*b.Height)
	for i := range plane {
		plane[i] = b.Pix[i*n+ch]
	}
	return plane, nil
}

// SetPlane writes plane back into channel ch, replacing its previous values.
// plane must hold exactly width*height values.
func (b *Buffer) SetPlane(ch int, plane []uint8) error {
	n := b.Channels()
	if ch < 0 || ch >= n {
		return fmt.Errorf("channel %d out of range for %s (%d channels)", ch, b.Mode, n)
	}
	if len(plane) != b.Width*b.Height {
		return fmt.Errorf("plane has %d values, want %d", len(plane), b.Width*b.Height)
	}

	for i, v := range plane {
		b.Pix[i*n+ch] = v
	}
	return nil
}
