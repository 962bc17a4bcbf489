package display

import (
	"github.com/jmylchreest/win7notify/internal/geometry"
)

// Popup geometry in pixels.
const (
	PopupWidth   = 360
	PopupHeight  = 170
	Padding      = 16
	IconSize     = 16
	ScreenMargin = 15
	StackGap     = 15
)

// Layout computes popup placement against the work area and the fixed
// rectangles of the popup contents.
type Layout struct {
	Width    int32
	Height   int32
	Padding  int32
	IconSize int32
	Margin   int32
	Gap      int32
}

// DefaultLayout returns the standard popup layout.
func DefaultLayout() Layout {
	return Layout{
		Width:    PopupWidth,
		Height:   PopupHeight,
		Padding:  Padding,
		IconSize: IconSize,
		Margin:   ScreenMargin,
		Gap:      StackGap,
	}
}

// Bounds returns the screen rectangle of the popup at the given stack slot.
// Slot 0 is the anchor at the bottom-right corner of the work area; each
// further slot sits one popup height plus gap higher.
func (l Layout) Bounds(area geometry.Rect, slot int) geometry.Rect {
	x := area.Right - l.Width - l.Margin
	y := area.Bottom - l.Height - l.Margin - int32(slot)*(l.Height+l.Gap)
	return geometry.RectFromSize(x, y, l.Width, l.Height)
}

// SlotPosition returns the top-left screen position of the given slot.
func (l Layout) SlotPosition(area geometry.Rect, slot int) geometry.Point {
	return l.Bounds(area, slot).Origin()
}

// StackPositions returns positions for count popups ordered oldest first,
// so the last entry occupies the anchor slot.
func (l Layout) StackPositions(area geometry.Rect, count int) []geometry.Point {
	positions := make([]geometry.Point, count)
	for i := range count {
		positions[i] = l.SlotPosition(area, count-1-i)
	}
	return positions
}

// ClientRect is the popup's client area.
func (l Layout) ClientRect() geometry.Rect {
	return geometry.RectFromSize(0, 0, l.Width, l.Height)
}

// CloseButton is the close affordance near the top-right corner.
func (l Layout) CloseButton() geometry.Rect {
	return geometry.RectFromSize(l.Width-l.Padding-l.IconSize, l.Padding, l.IconSize, l.IconSize)
}

// HitClose reports whether a client point is strictly inside the close
// button.
func (l Layout) HitClose(p geometry.Point) bool {
	return l.CloseButton().Contains(p)
}

// IconRect is where the application icon is drawn.
func (l Layout) IconRect() geometry.Rect {
	return geometry.RectFromSize(l.Padding, l.Padding, l.IconSize, l.IconSize)
}

// AppNameRect is the header line next to the icon.
func (l Layout) AppNameRect(hasIcon bool) geometry.Rect {
	left := l.Padding
	if hasIcon {
		left += l.IconSize + l.Padding/2
	}
	return geometry.Rect{
		Left:   left,
		Top:    l.Padding,
		Right:  l.CloseButton().Left - l.Padding/2,
		Bottom: l.Padding + l.IconSize,
	}
}

// SummaryRect is the bold title line.
func (l Layout) SummaryRect() geometry.Rect {
	top := l.Padding + l.IconSize + l.Padding/2
	return geometry.Rect{
		Left:   l.Padding,
		Top:    top,
		Right:  l.Width - l.Padding,
		Bottom: top + l.IconSize + l.Padding/2,
	}
}

// BodyRect is the word-wrapped body paragraph below the summary.
func (l Layout) BodyRect() geometry.Rect {
	summary := l.SummaryRect()
	return geometry.Rect{
		Left:   l.Padding,
		Top:    summary.Bottom + l.Padding/4,
		Right:  l.Width - l.Padding,
		Bottom: l.Height - l.Padding,
	}
}
