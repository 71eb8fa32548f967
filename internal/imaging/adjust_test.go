package imaging

import (
	"errors"
	"math"
	"testing"
)

func TestOffsetValue(t *testing.T) {
	tests := []struct {
		name   string
		v      uint8
		amount float64
		want   uint8
	}{
		{"add", 100, 50, 150},
		{"zero", 77, 0, 77},
		{"clip high", 200, 100, 255},
		{"clip low", 10, -50, 0},
		{"max negative", 255, -255, 0},
		{"truncates fraction", 10, 0.9, 10},
		{"negative fraction truncates", 10, -0.5, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OffsetValue(tt.v, tt.amount); got != tt.want {
				t.Errorf("OffsetValue(%d, %v): got %d, want %d", tt.v, tt.amount, got, tt.want)
			}
		})
	}
}

func TestMultiplyValue(t *testing.T) {
	tests := []struct {
		name   string
		v      uint8
		amount float64
		want   uint8
	}{
		{"identity", 123, 1, 123},
		{"clamped high", 200, 2, 255},
		{"negative wraps", 10, -10, 156},
		{"clamped negative wraps", 200, -2, 1},
		{"zero", 200, 0, 0},
		{"half", 201, 0.5, 100},
		{"negative fraction", 1, -0.5, 255},
		{"tiny negative wraps to zero", 255, -1e-300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MultiplyValue(tt.v, tt.amount); got != tt.want {
				t.Errorf("MultiplyValue(%d, %v): got %d, want %d", tt.v, tt.amount, got, tt.want)
			}
		})
	}
}

func TestMethodApply(t *testing.T) {
	plane := []uint8{0, 10, 100, 200, 255}

	offset := append([]uint8(nil), plane...)
	if err := MethodOffset.Apply(offset, 50); err != nil {
		t.Fatalf("Offset failed: %v", err)
	}
	wantOffset := []uint8{50, 60, 150, 250, 255}
	for i := range offset {
		if offset[i] != wantOffset[i] {
			t.Errorf("Offset[%d]: got %d, want %d", i, offset[i], wantOffset[i])
		}
	}

	multiply := append([]uint8(nil), plane...)
	if err := MethodMultiply.Apply(multiply, -1); err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	wantMultiply := []uint8{0, 246, 156, 56, 1}
	for i := range multiply {
		if multiply[i] != wantMultiply[i] {
			t.Errorf("Multiply[%d]: got %d, want %d", i, multiply[i], wantMultiply[i])
		}
	}
}

func TestMethodApply_Errors(t *testing.T) {
	tests := []struct {
		name    string
		method  Method
		amount  float64
		wantErr error
	}{
		{"unknown method", Method("Divide"), 1, ErrUnsupportedMethod},
		{"too large", MethodOffset, 255.5, ErrAdjustmentRange},
		{"too small", MethodMultiply, -256, ErrAdjustmentRange},
		{"nan", MethodOffset, math.NaN(), ErrAdjustmentRange},
		{"inf", MethodMultiply, math.Inf(1), ErrAdjustmentRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plane := []uint8{1, 2, 3}
			err := tt.method.Apply(plane, tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply: got %v, want %v", err, tt.wantErr)
			}
			if plane[0] != 1 || plane[1] != 2 || plane[2] != 3 {
				t.Errorf("plane modified on error: %v", plane)
			}
		})
	}
}

// Cross-checks Multiply against a floored-modulo formulation over every byte
// and a sweep of amounts.
func TestMultiplyValue_FlooredModulo(t *testing.T) {
	for amount := -255.0; amount <= 255.0; amount += 0.37 {
		for i := 0; i < 256; i++ {
			x := math.Max(-255, math.Min(255, float64(i)*amount))
			want := x - 256*math.Floor(x/256)
			if want >= 256 {
				want = 0
			}
			if got := MultiplyValue(uint8(i), amount); got != uint8(want) {
				t.Fatalf("MultiplyValue(%d, %v): got %d, want %d", i, amount, got, uint8(want))
			}
		}
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseMethod(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMethod(%q): got %q, %v", m, got, err)
		}
	}

	for _, bad := range []string{"", "multiply", "OFFSET", "Add"} {
		if _, err := ParseMethod(bad); !errors.Is(err, ErrUnsupportedMethod) {
			t.Errorf("ParseMethod(%q): got %v, want ErrUnsupportedMethod", bad, err)
		}
	}
}
