package modesto

import "errors"

// ErrNoCache is returned by Cache before a widget has rendered once.
var ErrNoCache = errors.New("modesto: widget has not rendered yet")

// WidgetID identifies a widget for the lifetime of the process. IDs are never
// reused, so a stale ID simply stops resolving once its widget leaves the
// tree.
type WidgetID uint32

// widgetIDCounter is not synchronized; widgets are created on the update goroutine.
var widgetIDCounter uint32

func nextWidgetID() WidgetID {
	widgetIDCounter++
	return WidgetID(widgetIDCounter)
}

// Widget is a node of the render tree. Composite widgets own their children
// exclusively; nothing holds a reference back to its parent.
type Widget interface {
	// ID returns the widget's stable identifier.
	ID() WidgetID

	// Render draws the widget at exactly width x height. A nil result means
	// nothing changed since the previous call at the same size and the caller
	// must use Cache. A non-nil result is authoritative and becomes the cache.
	Render(width, height int) *Buffer

	// Children returns the owned child widgets in paint order, or nil for
	// leaves.
	Children() []Widget

	// MinBounds returns the size the widget renders at without clipping.
	MinBounds() Bounds

	// Cache returns the most recently rendered buffer.
	Cache() (*Buffer, error)

	// HandleMouseEvent processes one routed event. abs is the screen
	// position, rel the position relative to this widget's top-left corner.
	// Follow-up reactions are queued on reg.
	HandleMouseEvent(abs, rel Position, kind MouseEventKind, reg *CallbackRegistrar)
}

// Receiver is implemented by widgets that accept intents produced by
// deferred callbacks.
type Receiver interface {
	Receive(Intent)
}

// identity gives a widget its ID.
type identity struct {
	id WidgetID
}

func newIdentity() identity {
	return identity{id: nextWidgetID()}
}

// ID returns the widget's stable identifier.
func (i identity) ID() WidgetID {
	return i.id
}

// renderCache is the per-widget cache entry. The stored buffer is only
// trusted when needsRedraw is false and the requested size matches.
type renderCache struct {
	buf         *Buffer
	width       int
	height      int
	needsRedraw bool
}

func newRenderCache() renderCache {
	return renderCache{needsRedraw: true}
}

// reusable reports whether Render(width, height) may return nil.
func (c *renderCache) reusable(width, height int) bool {
	return !c.needsRedraw && c.buf != nil &&
		c.width == width && c.height == height
}

// store records a fresh render and clears the dirty flag.
func (c *renderCache) store(b *Buffer) *Buffer {
	c.buf = b
	c.width = b.Width
	c.height = b.Height
	c.needsRedraw = false
	return b
}

// storeFailed records a render that hit a layout overflow. The widget stays
// dirty so the next frame recomputes instead of reusing the red buffer.
func (c *renderCache) storeFailed(b *Buffer) *Buffer {
	c.store(b)
	c.needsRedraw = true
	return b
}

// MarkDirty forces the next Render to recompute.
func (c *renderCache) MarkDirty() {
	c.needsRedraw = true
}

// NeedsRedraw reports whether the next Render will recompute.
func (c *renderCache) NeedsRedraw() bool {
	return c.needsRedraw
}

// Cache returns the last rendered buffer.
func (c *renderCache) Cache() (*Buffer, error) {
	if c.buf == nil {
		return nil, ErrNoCache
	}
	return c.buf, nil
}

// drawChild asks child to render at the given size and returns the buffer to
// composite together with whether it was freshly produced. A child that
// returns nil without ever having rendered yields a red buffer.
func drawChild(child Widget, width, height int) (buf *Buffer, fresh bool) {
	if b := child.Render(width, height); b != nil {
		return b, true
	}
	b, err := child.Cache()
	if err != nil || b.Width != width || b.Height != height {
		if globalDebug {
			debugLogf("%T %d returned no usable cache for %dx%d", child, child.ID(), width, height)
		}
		return errorBuffer(width, height), true
	}
	return b, false
}

// childDraw is one pending blit inside a composite render.
type childDraw struct {
	at  Position
	buf *Buffer
}

// compose blits each draw onto dst in order. It stops at the first overflow,
// leaving dst flooded red.
func compose(dst *Buffer, draws []childDraw) error {
	for _, d := range draws {
		if err := Blit(dst, d.at.X, d.at.Y, d.buf); err != nil {
			return err
		}
	}
	return nil
}

// walk visits w and all its descendants depth-first, stopping early when fn
// returns false.
func walk(w Widget, fn func(Widget) bool) bool {
	if !fn(w) {
		return false
	}
	for _, c := range w.Children() {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// subtreeIDs returns the IDs of w and every descendant.
func subtreeIDs(w Widget) []WidgetID {
	var ids []WidgetID
	walk(w, func(n Widget) bool {
		ids = append(ids, n.ID())
		return true
	})
	return ids
}
