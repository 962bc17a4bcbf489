// Package icon validates straight-alpha RGBA pixel buffers and converts them
// into the colour and mask planes a Win32 icon is built from.
package icon

import (
	"fmt"
)

// BytesPerPixel is the size of one RGBA pixel.
const BytesPerPixel = 4

// DimensionError reports an RGBA buffer whose length does not match the
// declared dimensions.
type DimensionError struct {
	Len    int
	Width  uint32
	Height uint32
}

func (e *DimensionError) Error() string {
	if e.Len%BytesPerPixel != 0 {
		return fmt.Sprintf("icon buffer length %d is not a multiple of %d", e.Len, BytesPerPixel)
	}
	return fmt.Sprintf("icon buffer holds %d pixels, but %dx%d requires %d",
		e.Len/BytesPerPixel, e.Width, e.Height, uint64(e.Width)*uint64(e.Height))
}

// Validate checks that rgba holds exactly width*height pixels.
func Validate(rgba []byte, width, height uint32) error {
	if len(rgba)%BytesPerPixel != 0 {
		return &DimensionError{Len: len(rgba), Width: width, Height: height}
	}
	if uint64(width)*uint64(height) != uint64(len(rgba)/BytesPerPixel) {
		return &DimensionError{Len: len(rgba), Width: width, Height: height}
	}
	return nil
}

// Image is a validated straight-alpha RGBA buffer.
type Image struct {
	Pixels []byte
	Width  uint32
	Height uint32
}

// New validates rgba and returns an Image holding a private copy of it.
func New(rgba []byte, width, height uint32) (*Image, error) {
	if err := Validate(rgba, width, height); err != nil {
		return nil, err
	}
	return &Image{
		Pixels: append([]byte(nil), rgba...),
		Width:  width,
		Height: height,
	}, nil
}

// Empty reports whether the image has no pixels.
func (img *Image) Empty() bool {
	return img == nil || len(img.Pixels) == 0
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	if img == nil {
		return nil
	}
	return &Image{
		Pixels: append([]byte(nil), img.Pixels...),
		Width:  img.Width,
		Height: img.Height,
	}
}
