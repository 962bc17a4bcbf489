package icon

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"

	"github.com/nfnt/resize"
)

// Load decodes an image file and scales it to size x size pixels. A size of
// zero keeps the source dimensions.
func Load(path string, size int) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon: %w", err)
	}
	defer func() { _ = f.Close() }()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon %s: %w", path, err)
	}

	return FromImage(src, size), nil
}

// FromImage converts src to a straight-alpha Image, scaling it first when
// size is non-zero and differs from the source dimensions.
func FromImage(src image.Image, size int) *Image {
	b := src.Bounds()
	if size > 0 && (b.Dx() != size || b.Dy() != size) {
		src = resize.Resize(uint(size), uint(size), src, resize.Lanczos3)
		b = src.Bounds()
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	return &Image{
		Pixels: dst.Pix,
		Width:  uint32(b.Dx()),
		Height: uint32(b.Dy()),
	}
}
