package modesto

// Window chrome geometry.
const (
	closeButtonSize  = 11
	closeButtonInset = 4
	titleTop         = 2
	chromeTickInset  = 4

	// chromeSide is the room kept free on each side of the title.
	chromeSide = 2*closeButtonInset + closeButtonSize
)

// --- CloseButton ---

// CloseButton is the box in a window's title bar. Pressing it fills the box
// black; releasing over it closes the window, releasing elsewhere only
// clears the pressed state.
type CloseButton struct {
	identity
	renderCache

	window  WidgetID
	pressed bool
}

func newCloseButton(window WidgetID) *CloseButton {
	return &CloseButton{
		identity:    newIdentity(),
		renderCache: newRenderCache(),
		window:      window,
	}
}

// Pressed reports whether the button is held down.
func (b *CloseButton) Pressed() bool {
	return b.pressed
}

// Render implements Widget.
func (b *CloseButton) Render(width, height int) *Buffer {
	if b.reusable(width, height) {
		return nil
	}
	if b.pressed {
		return b.store(NewBuffer(width, height, PixelBlack))
	}
	buf := NewBuffer(width, height, PixelWhite)
	buf.Border(PixelBlack)
	return b.store(buf)
}

// Children implements Widget.
func (b *CloseButton) Children() []Widget {
	return nil
}

// MinBounds implements Widget.
func (b *CloseButton) MinBounds() Bounds {
	return Bounds{closeButtonSize, closeButtonSize}
}

// HandleMouseEvent implements Widget.
func (b *CloseButton) HandleMouseEvent(abs, rel Position, kind MouseEventKind, reg *CallbackRegistrar) {
	if kind != LMBDown || b.pressed {
		return
	}
	b.pressed = true
	b.MarkDirty()

	self, window := b.id, b.window
	box := RectAt(abs.Sub(rel), b.MinBounds())
	reg.Defer(self, func(pos Position, kind MouseEventKind) Reaction {
		if kind != LMBUp {
			return Keep()
		}
		release := Intent{Target: self, Action: ActionRelease}
		if box.Contains(pos) {
			return Discard(release, Intent{Target: window, Action: ActionClose})
		}
		return Discard(release)
	})
}

// Receive implements Receiver.
func (b *CloseButton) Receive(in Intent) {
	if in.Action == ActionRelease && b.pressed {
		b.pressed = false
		b.MarkDirty()
	}
}

// --- WindowChrome ---

// WindowChrome is a window's title bar: a bordered band with tick marks, the
// close button at a fixed inset and the title centered horizontally.
type WindowChrome struct {
	identity
	renderCache

	window WidgetID
	button *CloseButton
	title  *TextWidget
}

func newWindowChrome(window WidgetID, title string, font FontProvider) *WindowChrome {
	t := NewText(title, font, ColorBlack, ColorWhite)
	t.SetCaching(true)
	return &WindowChrome{
		identity:    newIdentity(),
		renderCache: newRenderCache(),
		window:      window,
		button:      newCloseButton(window),
		title:       t,
	}
}

// Button returns the close button.
func (c *WindowChrome) Button() *CloseButton {
	return c.button
}

// Title returns the title text widget.
func (c *WindowChrome) Title() *TextWidget {
	return c.title
}

func (c *WindowChrome) buttonRect() Rect {
	return RectAt(Position{closeButtonInset, closeButtonInset}, c.button.MinBounds())
}

// Render implements Widget. The cache is keyed on the exact requested size.
func (c *WindowChrome) Render(width, height int) *Buffer {
	bb := c.button.MinBounds()
	btn, btnFresh := drawChild(c.button, bb.Width, bb.Height)
	tb := c.title.MinBounds()
	title, titleFresh := drawChild(c.title, tb.Width, tb.Height)
	if !btnFresh && !titleFresh && c.reusable(width, height) {
		return nil
	}

	buf := NewBuffer(width, height, PixelWhite)
	for y := chromeTickInset; y < height-chromeTickInset; y++ {
		if y%2 != 0 {
			continue
		}
		for x := chromeTickInset + 1; x < width-chromeTickInset; x++ {
			buf.Set(x, y, PixelBlack)
		}
	}
	buf.Border(PixelBlack)

	err := compose(buf, []childDraw{
		{at: c.buttonRect().Origin(), buf: btn},
		{at: Position{width/2 - tb.Width/2, titleTop}, buf: title},
	})
	if err != nil {
		return c.storeFailed(buf)
	}
	return c.store(buf)
}

// Children implements Widget.
func (c *WindowChrome) Children() []Widget {
	return []Widget{c.button, c.title}
}

// MinBounds implements Widget. The title needs room for the button on both
// sides so that centering never overlaps it.
func (c *WindowChrome) MinBounds() Bounds {
	return Bounds{
		Width:  c.title.MinBounds().Width + 2*chromeSide,
		Height: WindowChromeHeight,
	}
}

// HandleMouseEvent implements Widget. Presses outside the close button start
// dragging the window; the drag follows the pointer every tick until the
// left button is released.
func (c *WindowChrome) HandleMouseEvent(abs, rel Position, kind MouseEventKind, reg *CallbackRegistrar) {
	if br := c.buttonRect(); br.Contains(rel) {
		c.button.HandleMouseEvent(abs, rel.Sub(br.Origin()), kind, reg)
		return
	}
	if kind != LMBDown {
		return
	}
	grab, window := rel, c.window
	reg.Defer(c.id, func(pos Position, kind MouseEventKind) Reaction {
		move := Intent{Target: window, Action: ActionMove, Pos: pos.Sub(grab)}
		if kind == LMBUp {
			return Discard(move, Intent{Target: window, Action: ActionDrop})
		}
		return Keep(move)
	})
}

// --- Window ---

// Window is a movable top-level widget: chrome on top, body below, plus the
// top bar shown in the global menu band while the window is focused.
//
// A window has two render modes. Normal composites chrome and body; Moving
// draws a translucent drag ghost. SetMoving switches between them.
type Window struct {
	identity
	renderCache

	pos    Position
	size   Bounds
	moving bool
	closed bool

	chrome *WindowChrome
	body   Widget
	topBar *TopBar
}

// NewWindow creates a window with the given title, size and position, using
// the default font.
func NewWindow(title string, width, height, x, y int) *Window {
	return NewWindowWithFont(title, width, height, x, y, nil)
}

// NewWindowWithFont is NewWindow with an explicit font for the title and the
// default top bar.
func NewWindowWithFont(title string, width, height, x, y int, font FontProvider) *Window {
	w := &Window{
		identity:    newIdentity(),
		renderCache: newRenderCache(),
		pos:         Position{x, y},
		size:        Bounds{width, height},
	}
	w.chrome = newWindowChrome(w.id, title, font)
	w.body = NewRect(width, max(height-WindowChromeHeight, 0))
	w.topBar = NewTopBar(nil)
	return w
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.chrome.title.Text()
}

// SetTitle replaces the title.
func (w *Window) SetTitle(title string) {
	w.chrome.title.SetText(title)
}

// Chrome returns the title bar widget.
func (w *Window) Chrome() *WindowChrome {
	return w.chrome
}

// Body returns the content widget.
func (w *Window) Body() Widget {
	return w.body
}

// SetBody replaces the content widget.
func (w *Window) SetBody(body Widget) {
	if body == nil {
		panic("modesto: window body cannot be nil")
	}
	w.body = body
	w.MarkDirty()
}

// RegisterTopBar sets the global menu shown while this window is focused.
func (w *Window) RegisterTopBar(tb *TopBar) {
	if tb == nil {
		panic("modesto: top bar cannot be nil")
	}
	w.topBar = tb
}

// TopBar returns the window's global menu.
func (w *Window) TopBar() *TopBar {
	return w.topBar
}

// Position returns the top-left corner in screen coordinates.
func (w *Window) Position() Position {
	return w.pos
}

// SetPosition moves the window.
func (w *Window) SetPosition(p Position) {
	if p == w.pos {
		return
	}
	w.pos = p
	w.MarkDirty()
}

// SetSize resizes the window.
func (w *Window) SetSize(width, height int) {
	b := Bounds{width, height}
	if b == w.size {
		return
	}
	w.size = b
	w.MarkDirty()
}

// Bounds returns the window rectangle in screen coordinates.
func (w *Window) Bounds() Rect {
	return RectAt(w.pos, w.size)
}

// Moving reports whether the window renders as a drag ghost.
func (w *Window) Moving() bool {
	return w.moving
}

// SetMoving switches between the Moving and Normal render modes. It always
// marks the window dirty.
func (w *Window) SetMoving(moving bool) {
	w.moving = moving
	w.MarkDirty()
}

// Close marks the window closed; the desktop removes it on its next update.
func (w *Window) Close() {
	w.closed = true
}

// Closed reports whether the window has been closed.
func (w *Window) Closed() bool {
	return w.closed
}

// Render implements Widget.
func (w *Window) Render(width, height int) *Buffer {
	if w.moving {
		if w.reusable(width, height) {
			return nil
		}
		buf := NewBuffer(width, height, PixelGray)
		buf.Border(PixelTransparent)
		return w.store(buf)
	}

	chrome, chromeFresh := drawChild(w.chrome, width, WindowChromeHeight)
	draws := []childDraw{{at: Position{}, buf: chrome}}
	bodyFresh := false
	if bodyH := height - WindowChromeHeight; bodyH > 0 {
		var body *Buffer
		body, bodyFresh = drawChild(w.body, width, bodyH)
		draws = append(draws, childDraw{at: Position{0, WindowChromeHeight}, buf: body})
	}
	if !chromeFresh && !bodyFresh && w.reusable(width, height) {
		return nil
	}

	buf := NewBuffer(width, height, PixelBlack)
	if err := compose(buf, draws); err != nil {
		return w.storeFailed(buf)
	}
	return w.store(buf)
}

// Children implements Widget.
func (w *Window) Children() []Widget {
	return []Widget{w.chrome, w.body, w.topBar}
}

// MinBounds implements Widget.
func (w *Window) MinBounds() Bounds {
	return w.size
}

// HandleMouseEvent implements Widget. rel is relative to the window's
// top-left corner.
func (w *Window) HandleMouseEvent(abs, rel Position, kind MouseEventKind, reg *CallbackRegistrar) {
	if rel.Y < WindowChromeHeight {
		w.chrome.HandleMouseEvent(abs, rel, kind, reg)
		return
	}
	w.body.HandleMouseEvent(abs, rel.Sub(Position{0, WindowChromeHeight}), kind, reg)
}

// Receive implements Receiver.
func (w *Window) Receive(in Intent) {
	switch in.Action {
	case ActionClose:
		w.Close()
	case ActionMove:
		if !w.moving {
			w.SetMoving(true)
		}
		w.SetPosition(in.Pos)
	case ActionDrop:
		w.SetMoving(false)
	}
}
