package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func writePNG(t *testing.T, path string, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}
}

func TestResolveSearchPathOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writePNG(t, filepath.Join(second, "tex.png"), color.RGBA{0, 255, 0, 255})

	r := NewResolver([]string{first, second}, zap.NewNop())
	data, err := r.Resolve("tex.png")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty asset bytes")
	}

	// First path shadows the second once the file exists there too.
	writePNG(t, filepath.Join(first, "tex.png"), color.RGBA{255, 0, 0, 255})
	shadowed, err := r.Resolve("tex.png")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if bytes.Equal(data, shadowed) {
		t.Fatal("search order not respected")
	}
}

func TestResolveErrorListsTriedPaths(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	r := NewResolver([]string{a, b}, zap.NewNop())

	_, err := r.Resolve("nope.png")
	if err == nil {
		t.Fatal("Resolve of missing asset must error")
	}
	msg := err.Error()
	if !strings.Contains(msg, a) || !strings.Contains(msg, b) {
		t.Fatalf("error does not list tried paths: %v", msg)
	}
}

func TestResolveFileURI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "direct.png")
	writePNG(t, path, color.RGBA{1, 2, 3, 255})

	r := NewResolver(nil, zap.NewNop())
	if _, err := r.Resolve("file://" + path); err != nil {
		t.Fatalf("Resolve(file://): %v", err)
	}
}

func TestDecodeRGBA8(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	pixels, w, h, err := DecodeRGBA8(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeRGBA8: %v", err)
	}
	if w != 3 || h != 2 {
		t.Fatalf("size = %dx%d, want 3x2", w, h)
	}
	if len(pixels) != 3*2*4 {
		t.Fatalf("pixel bytes = %d, want %d", len(pixels), 3*2*4)
	}
	if pixels[0] != 255 || pixels[1] != 0 || pixels[2] != 0 || pixels[3] != 255 {
		t.Fatalf("first pixel = %v, want red", pixels[:4])
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, _, _, err := DecodeRGBA8([]byte("not an image")); err == nil {
		t.Fatal("garbage decoded")
	}
}

func TestSourceLoadRGBA8(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "tile.png"), color.RGBA{0, 0, 255, 255})

	src := NewSource(NewResolver([]string{dir}, zap.NewNop()))
	pixels, w, h, err := src.LoadRGBA8("tile.png")
	if err != nil {
		t.Fatalf("LoadRGBA8: %v", err)
	}
	if w != 2 || h != 2 || len(pixels) != 16 {
		t.Fatalf("got %dx%d, %d bytes", w, h, len(pixels))
	}

	if _, _, _, err := src.LoadRGBA8("absent.png"); err == nil {
		t.Fatal("missing asset did not error")
	}
}
