package store

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ironsheep/channel-adjust-mcp/internal/imaging"
	"github.com/ironsheep/channel-adjust-mcp/internal/node"
)

// writePNG writes a solid-color PNG named name into dir.
func writePNG(t *testing.T, dir, name string, width, height int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

func TestNew(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Dir() != dir {
		t.Errorf("Dir: got %q, want %q", s.Dir(), dir)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Errorf("directory not created: %v", err)
	}

	if _, err := New(""); err == nil {
		t.Error("New(\"\") should fail")
	}
}

func TestGetImage(t *testing.T) {
	s := newTestStore(t)
	writePNG(t, s.Dir(), "red.png", 20, 10, color.RGBA{255, 0, 0, 255})

	img, err := s.GetImage("red.png")
	if err != nil {
		t.Fatalf("GetImage failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("size: got %v, want 20x10", img.Bounds())
	}
}

func TestGetImage_Errors(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name    string
		image   string
		wantErr error
	}{
		{"missing", "nope.png", ErrNotFound},
		{"empty", "", ErrInvalidName},
		{"parent", "..", ErrInvalidName},
		{"traversal", "../secret.png", ErrInvalidName},
		{"absolute", "/etc/passwd", ErrInvalidName},
		{"subdir", "a/b.png", ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.GetImage(tt.image); !errors.Is(err, tt.wantErr) {
				t.Errorf("GetImage(%q): got %v, want %v", tt.image, err, tt.wantErr)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	s := newTestStore(t)

	out := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	out.SetNRGBA(1, 1, color.NRGBA{1, 2, 3, 128})

	rec, err := s.Create(node.CreateImageRequest{
		Image:          out,
		Origin:         node.OriginInternal,
		Category:       node.CategoryGeneral,
		NodeID:         "n1",
		SessionID:      "s1",
		IsIntermediate: true,
		Workflow:       `{"id":"w"}`,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if filepath.Ext(rec.Name) != ".png" {
		t.Errorf("Name: got %q, want a .png name", rec.Name)
	}
	if rec.Width != 3 || rec.Height != 2 {
		t.Errorf("size: got %dx%d, want 3x2", rec.Width, rec.Height)
	}
	if rec.NodeID != "n1" || rec.SessionID != "s1" || !rec.IsIntermediate {
		t.Errorf("ids not recorded: %+v", rec)
	}

	// A fresh store over the same directory reads the file and sidecar back.
	other, err := New(s.Dir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	img, err := other.GetImage(rec.Name)
	if err != nil {
		t.Fatalf("GetImage failed: %v", err)
	}
	got := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA)
	if got != (color.NRGBA{1, 2, 3, 128}) {
		t.Errorf("pixel: got %v, want {1 2 3 128}", got)
	}

	back, err := other.Record(rec.Name)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if back.Origin != node.OriginInternal || back.Category != node.CategoryGeneral {
		t.Errorf("origin/category: got %q/%q", back.Origin, back.Category)
	}
	if back.Workflow != `{"id":"w"}` || !back.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("record mismatch: got %+v, want %+v", back, rec)
	}
}

func TestCreate_UniqueNames(t *testing.T) {
	s := newTestStore(t)
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		rec, err := s.Create(node.CreateImageRequest{Image: img})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if seen[rec.Name] {
			t.Fatalf("duplicate name %q", rec.Name)
		}
		seen[rec.Name] = true
	}
}

func TestCreate_FailureLeavesNothing(t *testing.T) {
	s := newTestStore(t)
	s.newName = func() string { return "../escape.png" }

	if _, err := s.Create(node.CreateImageRequest{Image: image.NewNRGBA(image.Rect(0, 0, 1, 1))}); err == nil {
		t.Fatal("Create should fail for an invalid generated name")
	}
	if _, err := s.Create(node.CreateImageRequest{}); err == nil {
		t.Fatal("Create should fail without an image")
	}

	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("store directory should be empty, has %d entries", len(entries))
	}
}

func TestRecord_NotFound(t *testing.T) {
	s := newTestStore(t)
	writePNG(t, s.Dir(), "plain.png", 1, 1, color.Black)

	if _, err := s.Record("plain.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestInfo(t *testing.T) {
	s := newTestStore(t)
	writePNG(t, s.Dir(), "blue.png", 64, 32, color.RGBA{0, 0, 255, 255})

	info, err := s.Info("blue.png")
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.Width != 64 || info.Height != 32 {
		t.Errorf("size: got %dx%d, want 64x32", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %q, want png", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("ColorDepth: got %q, want 8-bit", info.ColorDepth)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d", info.FileSizeBytes)
	}

	dims, err := s.Dimensions("blue.png")
	if err != nil {
		t.Fatalf("Dimensions failed: %v", err)
	}
	if dims.Width != 64 || dims.Height != 32 {
		t.Errorf("Dimensions: got %+v", dims)
	}
}

// The store is a complete host image service for the node.
func TestStore_WithChannelAdjust(t *testing.T) {
	s := newTestStore(t)
	writePNG(t, s.Dir(), "src.png", 2, 2, color.RGBA{100, 0, 0, 255})

	n := node.NewChannelAdjust("src.png", imaging.ModeRGB, imaging.MethodOffset)
	n.Adjustment = 50

	out, err := n.Invoke(&node.InvocationContext{Images: s, NodeID: "n", SessionID: "s"})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}

	fresh, err := New(s.Dir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	img, err := fresh.GetImage(out.Image.ImageName)
	if err != nil {
		t.Fatalf("GetImage failed: %v", err)
	}
	got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if got != (color.NRGBA{150, 0, 0, 255}) {
		t.Errorf("pixel: got %v, want {150 0 0 255}", got)
	}
}
