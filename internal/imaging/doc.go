// Package imaging provides the pixel-level operations behind channel
// adjustment: color-mode conversion, per-channel arithmetic, pixel sampling
// and a decoded-image cache.
//
// # Pixel Buffers
//
// A Buffer holds an image converted into one ColorMode as a height × width ×
// channels array of bytes. FromImage builds a Buffer from any image.Image and
// Buffer.ToNRGBA turns it back into a 4-channel non-premultiplied RGBA image.
// Plane and SetPlane move a single channel in and out of the buffer so it can
// be adjusted with Method.Apply.
//
// # Color Modes
//
// Supported modes are RGB, RGBA, CYMK, YCbCr, LAB and HSV. CYMK is accepted
// as a name but cannot be converted into; FromImage rejects it with
// ErrUnsupportedMode. Conversions through LAB and HSV are lossy at 8 bits;
// RGB and RGBA round-trip exactly.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Buffers are owned by a
// single caller and must not be shared while being mutated.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Unknown color modes or adjustment methods (ErrUnsupportedMode, ErrUnsupportedMethod)
//   - Adjustments outside [-255, 255] (ErrAdjustmentRange)
//   - Empty images (ErrEmptyImage)
//   - Channels or coordinates outside the buffer
//   - File I/O errors during image loading
package imaging
