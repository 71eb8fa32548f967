package imaging

import (
	"errors"
	"fmt"
	"math"
)

// Method selects how a channel adjustment is applied.
type Method string

// Supported adjustment methods.
const (
	MethodMultiply Method = "Multiply"
	MethodOffset   Method = "Offset"
)

// Adjustment bounds accepted by Apply.
const (
	MinAdjustment = -255.0
	MaxAdjustment = 255.0
)

var (
	// ErrUnsupportedMethod is returned for a method other than Multiply or Offset.
	ErrUnsupportedMethod = errors.New("unsupported adjustment method")

	// ErrAdjustmentRange is returned for an amount outside [-255, 255] or NaN.
	ErrAdjustmentRange = errors.New("adjustment out of range")
)

// Methods returns every supported adjustment method.
func Methods() []Method {
	return []Method{MethodMultiply, MethodOffset}
}

// ParseMethod converts a wire name into a Method. Names are case-sensitive.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
	return m, nil
}

// Valid reports whether m is a supported method.
func (m Method) Valid() bool {
	return m == MethodMultiply || m == MethodOffset
}

func (m Method) String() string {
	return string(m)
}

// ValidAdjustment reports whether amount lies within [-255, 255].
func ValidAdjustment(amount float64) bool {
	// NaN fails both comparisons.
	return amount >= MinAdjustment && amount <= MaxAdjustment
}

// Apply adjusts every value of plane in place.
//
// Offset adds amount and clamps the sum into [0, 255].
//
// Multiply scales by amount, clamps the product into [-255, 255] and then
// takes it modulo 256 with a non-negative result, so negative products wrap
// around instead of clipping to zero (10 * -10 = -100 becomes 156).
//
// In both cases the fractional part is truncated when the result is stored.
func (m Method) Apply(plane []uint8, amount float64) error {
	if !ValidAdjustment(amount) {
		return fmt.Errorf("%w: %v", ErrAdjustmentRange, amount)
	}

	var fn func(uint8, float64) uint8
	switch m {
	case MethodOffset:
		fn = OffsetValue
	case MethodMultiply:
		fn = MultiplyValue
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, m)
	}

	for i, v := range plane {
		plane[i] = fn(v, amount)
	}
	return nil
}

// OffsetValue returns clamp(v + amount, 0, 255), truncated to a byte.
func OffsetValue(v uint8, amount float64) uint8 {
	return uint8(clamp(float64(v)+amount, 0, 255))
}

// MultiplyValue returns clamp(v * amount, -255, 255) mod 256, truncated to a
// byte.
func MultiplyValue(v uint8, amount float64) uint8 {
	r := math.Mod(clamp(float64(v)*amount, -255, 255), 256)
	if r < 0 {
		r += 256
	}
	// A tiny negative remainder rounds up to exactly 256, which wraps to 0.
	if r >= 256 {
		return 0
	}
	return uint8(r)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
