package display

// Painter draws popup contents onto a canvas.
type Painter struct {
	Layout Layout
	Theme  Theme
}

// Paint draws p in a fixed order: background, icon, close glyph, app name,
// summary, body. A failed icon draw is returned after the rest of the popup
// has been painted; callers treat it as cosmetic.
func (pt Painter) Paint(c Canvas, p *Popup) error {
	l, th := pt.Layout, pt.Theme

	c.FillRect(l.ClientRect(), th.Background)

	var iconErr error
	hasIcon := p.Bitmap != nil
	if hasIcon {
		iconErr = c.DrawIcon(p.Bitmap, l.IconRect())
	}

	glyph := th.Close
	if p.HoverClose() {
		c.FillRect(l.CloseButton(), th.CloseHoverBackground)
		glyph = th.CloseHover
	}
	c.DrawText(closeGlyph, l.CloseButton(), th.CloseFont, glyph, TextSingleLine|TextCenter)

	c.DrawText(p.Content.AppName, l.AppNameRect(hasIcon), th.AppNameFont, th.AppName, TextSingleLine|TextEndEllipsis)
	c.DrawText(p.Content.Summary, l.SummaryRect(), th.SummaryFont, th.Text, TextSingleLine|TextEndEllipsis)
	c.DrawText(p.Content.Body, l.BodyRect(), th.BodyFont, th.Text, TextWordBreak)

	return iconErr
}
