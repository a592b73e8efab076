package modesto

// TextWidget lays out a single line of text glyph by glyph from a
// FontProvider. Characters missing from the font consume a blank 8x16 box
// with an advance of 1.
//
// A TextWidget does not cache by default: every Render recomputes, since the
// composite that owns it usually caches one level up. Composites that poll
// their text children every frame turn caching on with SetCaching.
type TextWidget struct {
	identity
	cache renderCache

	font       FontProvider
	text       string
	foreground Color
	background Color
	align      TextAlign
	caching    bool
}

// NewText creates a text widget. A nil font uses DefaultFont.
func NewText(text string, font FontProvider, foreground, background Color) *TextWidget {
	if font == nil {
		font = DefaultFont()
	}
	return &TextWidget{
		identity:   newIdentity(),
		cache:      newRenderCache(),
		font:       font,
		text:       text,
		foreground: foreground,
		background: background,
	}
}

// Text returns the current string.
func (t *TextWidget) Text() string {
	return t.text
}

// SetText replaces the string.
func (t *TextWidget) SetText(s string) {
	if s == t.text {
		return
	}
	t.text = s
	t.cache.MarkDirty()
}

// SetColors changes foreground and background.
func (t *TextWidget) SetColors(foreground, background Color) {
	if foreground == t.foreground && background == t.background {
		return
	}
	t.foreground = foreground
	t.background = background
	t.cache.MarkDirty()
}

// Colors returns the foreground and background colors.
func (t *TextWidget) Colors() (foreground, background Color) {
	return t.foreground, t.background
}

// SetAlign sets the horizontal alignment used when the requested width is
// larger than the text.
func (t *TextWidget) SetAlign(a TextAlign) {
	if a == t.align {
		return
	}
	t.align = a
	t.cache.MarkDirty()
}

// SetCaching turns render caching on or off.
func (t *TextWidget) SetCaching(enabled bool) {
	t.caching = enabled
	t.cache.MarkDirty()
}

// Render implements Widget.
func (t *TextWidget) Render(width, height int) *Buffer {
	if t.caching && t.cache.reusable(width, height) {
		return nil
	}

	buf := NewBuffer(width, height, t.background.Pixel())
	xoff := 0
	switch t.align {
	case TextAlignCenter:
		xoff = (width - t.textWidth()) / 2
	case TextAlignRight:
		xoff = width - t.textWidth()
	}
	if xoff < 0 {
		xoff = 0
	}

	for _, r := range t.text {
		g := glyphFor(t.font, r)
		src := &Buffer{
			Pix:    Colorize(g.Pix, t.foreground, t.background),
			Width:  g.Width,
			Height: g.Height,
		}
		if err := Blit(buf, xoff, 0, src); err != nil {
			return t.cache.storeFailed(buf)
		}
		xoff += g.Advance()
	}
	return t.cache.store(buf)
}

// textWidth is the sum of glyph advances.
func (t *TextWidget) textWidth() int {
	w := 0
	for _, r := range t.text {
		w += glyphFor(t.font, r).Advance()
	}
	return w
}

// Children implements Widget. Text is a leaf.
func (t *TextWidget) Children() []Widget {
	return nil
}

// MinBounds implements Widget: total advance by tallest glyph.
func (t *TextWidget) MinBounds() Bounds {
	var b Bounds
	for _, r := range t.text {
		g := glyphFor(t.font, r)
		b.Width += g.Advance()
		if g.Height > b.Height {
			b.Height = g.Height
		}
	}
	return b
}

// Cache implements Widget. Without caching enabled, or before the first
// render, the text is rendered at its minimum bounds.
func (t *TextWidget) Cache() (*Buffer, error) {
	if !t.caching || t.cache.buf == nil {
		b := t.MinBounds()
		return t.Render(b.Width, b.Height), nil
	}
	return t.cache.Cache()
}

// MarkDirty forces the next Render to recompute.
func (t *TextWidget) MarkDirty() {
	t.cache.MarkDirty()
}

// HandleMouseEvent implements Widget. Text ignores input.
func (t *TextWidget) HandleMouseEvent(abs, rel Position, kind MouseEventKind, reg *CallbackRegistrar) {
}
