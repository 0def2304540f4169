package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return path
}

func TestProbe(t *testing.T) {
	path := writeTestPNG(t, 320, 200)

	info, err := Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}

	if info.Width != 320 || info.Height != 200 {
		t.Errorf("Expected 320x200, got %dx%d", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Expected format png, got %s", info.Format)
	}
}

func TestProbeMissingFile(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestProbeNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := Probe(path)
	if err == nil {
		t.Error("Expected error for undecodable file, got nil")
	}
}

func TestThumbnailResizesWideImages(t *testing.T) {
	path := writeTestPNG(t, 800, 400)

	preview, err := Thumbnail(path, 200)
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(preview))
	if err != nil {
		t.Fatalf("Failed to decode preview: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("Expected jpeg preview, got %s", format)
	}
	if cfg.Width != 200 || cfg.Height != 100 {
		t.Errorf("Expected 200x100 preview, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestThumbnailKeepsNarrowImages(t *testing.T) {
	path := writeTestPNG(t, 100, 60)

	preview, err := Thumbnail(path, 400)
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(preview))
	if err != nil {
		t.Fatalf("Failed to decode preview: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 60 {
		t.Errorf("Expected original 100x60 size, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestThumbnailInvalidWidth(t *testing.T) {
	path := writeTestPNG(t, 10, 10)

	if _, err := Thumbnail(path, 0); err == nil {
		t.Error("Expected error for zero width, got nil")
	}
}
