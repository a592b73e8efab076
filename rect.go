package modesto

// RectWidget is a flat mid-gray body used as placeholder window content.
type RectWidget struct {
	identity
	renderCache

	bounds Bounds
	fill   Pixel
}

// NewRect creates a gray rectangle whose minimum bounds are width x height.
func NewRect(width, height int) *RectWidget {
	return &RectWidget{
		identity:    newIdentity(),
		renderCache: newRenderCache(),
		bounds:      Bounds{width, height},
		fill:        PixelGray,
	}
}

// SetFill changes the fill pixel.
func (r *RectWidget) SetFill(p Pixel) {
	if p == r.fill {
		return
	}
	r.fill = p
	r.MarkDirty()
}

// Render implements Widget.
func (r *RectWidget) Render(width, height int) *Buffer {
	if r.reusable(width, height) {
		return nil
	}
	return r.store(NewBuffer(width, height, r.fill))
}

// Children implements Widget.
func (r *RectWidget) Children() []Widget {
	return nil
}

// MinBounds implements Widget.
func (r *RectWidget) MinBounds() Bounds {
	return r.bounds
}

// HandleMouseEvent implements Widget. The body placeholder ignores input.
func (r *RectWidget) HandleMouseEvent(abs, rel Position, kind MouseEventKind, reg *CallbackRegistrar) {
}
