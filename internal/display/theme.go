package display

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB colour.
type Color struct {
	R, G, B uint8
}

// COLORREF packs c into the Win32 0x00BBGGRR layout.
func (c Color) COLORREF() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FontFamily is the face every popup string is drawn with.
const FontFamily = "Segoe UI"

// closeGlyph is drawn inside the close button.
const closeGlyph = "×"

// Theme is the fixed popup palette and typography.
type Theme struct {
	Background           Color
	Text                 Color
	AppName              Color
	Close                Color
	CloseHover           Color
	CloseHoverBackground Color

	AppNameFont Font
	SummaryFont Font
	BodyFont    Font
	CloseFont   Font
}

// DefaultTheme returns the dark palette of the Windows 10 action center.
func DefaultTheme() Theme {
	bg := mustHex("#323945")
	white := mustHex("#ffffff")

	return Theme{
		Background:           fromColorful(bg),
		Text:                 fromColorful(white),
		AppName:              fromColorful(bg.BlendRgb(white, 0.8)),
		Close:                fromColorful(mustHex("#969696")),
		CloseHover:           fromColorful(white),
		CloseHoverBackground: fromColorful(bg.BlendRgb(white, 0.12)),

		AppNameFont: Font{Family: FontFamily, Size: 15, Weight: 400},
		SummaryFont: Font{Family: FontFamily, Size: 18, Weight: 700},
		BodyFont:    Font{Family: FontFamily, Size: 18, Weight: 400},
		CloseFont:   Font{Family: FontFamily, Size: 18, Weight: 400},
	}
}
