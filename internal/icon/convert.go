package icon

// Bitmap is an icon in device form: BGRA colour bits plus a 1bpp AND mask.
// Mask rows are padded to 16-bit boundaries as CreateIcon expects, most
// significant bit first.
type Bitmap struct {
	Width      int32
	Height     int32
	Color      []byte
	Mask       []byte
	MaskStride int
}

// MaskStride returns the byte length of one mask row for the given width.
func MaskStride(width int) int {
	return ((width + 15) / 16) * 2
}

// Convert produces the device representation of img. The mask bit of a pixel
// is its inverted alpha thresholded at half intensity, so opaque pixels
// leave the bit clear and transparent ones set it.
func Convert(img *Image) *Bitmap {
	if img.Empty() {
		return nil
	}

	width := int(img.Width)
	height := int(img.Height)
	stride := MaskStride(width)

	color := append([]byte(nil), img.Pixels...)
	mask := make([]byte, stride*height)

	for i := 0; i+BytesPerPixel <= len(color); i += BytesPerPixel {
		px := color[i : i+BytesPerPixel : i+BytesPerPixel]

		if inverted := 0xFF - px[3]; inverted >= 0x80 {
			n := i / BytesPerPixel
			x, y := n%width, n/width
			mask[y*stride+x/8] |= 0x80 >> (x % 8)
		}

		// RGBA -> BGRA
		px[0], px[2] = px[2], px[0]
	}

	return &Bitmap{
		Width:      int32(width),
		Height:     int32(height),
		Color:      color,
		Mask:       mask,
		MaskStride: stride,
	}
}
