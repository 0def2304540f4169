// Package images provides image metadata probing and in-memory preview
// rendering for the viewer. Decoding failures stay here; the data-access
// core only hands out paths.
package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Info contains metadata about an image file, read without a full decode.
type Info struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// Probe returns the dimensions and format of the image at path.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return Info{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// Thumbnail decodes the image at path and returns a JPEG preview no wider
// than width, resized in memory. Images already narrower than width are
// re-encoded without resizing.
func Thumbnail(path string, width int) ([]byte, error) {
	if width < 1 {
		return nil, fmt.Errorf("invalid thumbnail width %d", width)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}
