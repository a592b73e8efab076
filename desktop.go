package modesto

import (
	"time"
)

// EventSink receives every event the desktop routes to a top-level widget.
// When set on a Desktop, routed events are forwarded to it.
type EventSink interface {
	EmitEvent(event RoutedEvent)
}

// RoutedEvent describes one mouse event delivered by the desktop.
type RoutedEvent struct {
	Kind     MouseEventKind
	Target   WidgetID // window, top bar or fold-out menu that received it
	Absolute Position
	Relative Position
}

// Desktop is the root widget. It owns the windows, routes pointer events to
// them, runs deferred callbacks and composites the frame.
//
// windows[0] is the focused window: it is drawn last and its top bar fills
// the global menu band.
type Desktop struct {
	identity
	renderCache

	size      Bounds
	windows   []*Window
	registrar CallbackRegistrar
	sink      EventSink
	debug     bool
	onUpdate  func() error

	tweens    []*WindowTween
	menuShown WidgetID // fold-out menu composited into the cached frame, 0 if none

	// Automation
	injectQueue     []PointerState
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
}

// NewDesktop creates an empty desktop for a width x height screen.
func NewDesktop(width, height int) *Desktop {
	return &Desktop{
		identity:      newIdentity(),
		renderCache:   newRenderCache(),
		size:          Bounds{width, height},
		ScreenshotDir: "screenshots",
	}
}

// RegisterWindow adds w behind every registered window. The first window
// registered is the focused one until another is raised.
func (d *Desktop) RegisterWindow(w *Window) {
	if w == nil {
		panic("modesto: cannot register nil window")
	}
	if d.indexOf(w) >= 0 {
		panic("modesto: window already registered")
	}
	d.windows = append(d.windows, w)
	d.MarkDirty()
	if d.debug {
		debugCheckWindowCount(d)
	}
}

// RemoveWindow removes w and drops every deferred callback owned by its
// subtree. It reports whether w was registered.
func (d *Desktop) RemoveWindow(w *Window) bool {
	i := d.indexOf(w)
	if i < 0 {
		return false
	}
	copy(d.windows[i:], d.windows[i+1:])
	d.windows[len(d.windows)-1] = nil
	d.windows = d.windows[:len(d.windows)-1]
	d.registrar.DropOwners(subtreeIDs(w)...)
	d.MarkDirty()
	return true
}

// Windows returns the windows front to back. The returned slice MUST NOT be
// mutated.
func (d *Desktop) Windows() []*Window {
	return d.windows
}

// Focused returns the front window, or nil when the desktop is empty.
func (d *Desktop) Focused() *Window {
	if len(d.windows) == 0 {
		return nil
	}
	return d.windows[0]
}

// Raise moves w to the front. Open menus of the previously focused window
// are closed.
func (d *Desktop) Raise(w *Window) {
	i := d.indexOf(w)
	if i <= 0 {
		return
	}
	d.windows[0].TopBar().CloseMenus()
	copy(d.windows[1:i+1], d.windows[:i])
	d.windows[0] = w
	d.MarkDirty()
}

// Registrar returns the desktop's deferred callback queue.
func (d *Desktop) Registrar() *CallbackRegistrar {
	return &d.registrar
}

// Find returns the widget with the given ID anywhere in the tree, or nil.
func (d *Desktop) Find(id WidgetID) Widget {
	var found Widget
	walk(d, func(w Widget) bool {
		if w.ID() == id {
			found = w
			return false
		}
		return true
	})
	return found
}

// SetEventSink sets the optional routed-event observer.
func (d *Desktop) SetEventSink(sink EventSink) {
	d.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, routing
// decisions, dropped callbacks and per-frame render stats are logged to
// stderr.
func (d *Desktop) SetDebugMode(enabled bool) {
	d.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Desktop debug flag so that
// widgets (which lack a Desktop pointer) can check it cheaply.
var globalDebug bool

// Update advances the desktop by one tick: scripted input, tweens, routing of
// the tick's event, then the deferred callbacks. Closed windows are removed
// afterwards. dt is the tick length in seconds.
func (d *Desktop) Update(ps PointerState, dt float32) {
	if d.testRunner != nil {
		d.testRunner.step(d)
	}
	if injected, ok := d.popInjected(); ok {
		ps = injected
	}
	d.updateTweens(dt)

	if ps.Event != PointerMove {
		d.route(ps.Pos, ps.Event, &d.registrar)
	}
	if d.registrar.Len() > 0 {
		index := d.index()
		alive := func(id WidgetID) bool {
			_, ok := index[id]
			return ok
		}
		for _, in := range d.registrar.Drain(ps.Pos, ps.Event, alive) {
			d.deliverIntent(in)
		}
	}
	d.reapClosed()
	d.clampWindows()
}

// index maps every widget ID in the tree to its widget.
func (d *Desktop) index() map[WidgetID]Widget {
	m := make(map[WidgetID]Widget)
	walk(d, func(w Widget) bool {
		m[w.ID()] = w
		return true
	})
	return m
}

// deliverIntent looks the target up in the current tree, so an intent whose
// widget was removed by an earlier intent of the same tick is dropped.
func (d *Desktop) deliverIntent(in Intent) {
	r, ok := d.Find(in.Target).(Receiver)
	if !ok {
		if d.debug {
			debugLogf("intent %s for widget %d has no receiver", in.Action, in.Target)
		}
		return
	}
	r.Receive(in)
}

// reapClosed removes windows whose Close has been called.
func (d *Desktop) reapClosed() {
	for i := len(d.windows) - 1; i >= 0; i-- {
		if w := d.windows[i]; w.Closed() {
			if d.debug {
				debugLogf("removing closed window %d %q", w.ID(), w.Title())
			}
			d.RemoveWindow(w)
		}
	}
}

// clampWindows keeps every window on screen. A window that fits below the
// global menu band is kept out of it so its title bar stays reachable.
func (d *Desktop) clampWindows() {
	for _, w := range d.windows {
		p := w.Position()
		b := w.MinBounds()
		top := 0
		if b.Height <= d.size.Height-TopBarHeight {
			top = TopBarHeight
		}
		p.X = min(p.X, d.size.Width-b.Width)
		p.Y = min(p.Y, d.size.Height-b.Height)
		p.X = max(p.X, 0)
		p.Y = max(p.Y, top)
		w.SetPosition(p)
	}
}

// Draw renders the desktop at width x height and returns the frame. The
// returned buffer is owned by the desktop and is reused while nothing changes.
func (d *Desktop) Draw(width, height int) *Buffer {
	var start time.Time
	if d.debug {
		start = time.Now()
	}

	frame := d.Render(width, height)
	reused := frame == nil
	if reused {
		frame = d.buf
	}
	d.flushScreenshots(frame)

	if d.debug {
		d.debugLog(debugStats{
			renderTime: time.Since(start),
			reused:     reused,
			windows:    len(d.windows),
			callbacks:  d.registrar.Len(),
		})
	}
	return frame
}

// Render implements Widget. Windows are painted back to front at their
// positions, then the focused window's top bar and its open fold-out menu.
func (d *Desktop) Render(width, height int) *Buffer {
	d.size = Bounds{width, height}
	if len(d.windows) == 0 {
		if d.reusable(width, height) {
			return nil
		}
		return d.store(NewBuffer(width, height, PixelWhite))
	}

	draws := make([]childDraw, 0, len(d.windows)+2)
	anyFresh := false
	for i := len(d.windows) - 1; i >= 0; i-- {
		w := d.windows[i]
		b := w.MinBounds()
		buf, fresh := drawChild(w, b.Width, b.Height)
		anyFresh = anyFresh || fresh
		draws = append(draws, childDraw{at: w.Position(), buf: buf})
	}

	bar := d.windows[0].TopBar()
	buf, fresh := drawChild(bar, width, TopBarHeight)
	anyFresh = anyFresh || fresh
	draws = append(draws, childDraw{buf: buf})

	var menuID WidgetID
	if menu, at, ok := bar.OpenMenu(); ok {
		if mb := menu.MinBounds(); mb.Area() > 0 {
			buf, fresh := drawChild(menu, mb.Width, mb.Height)
			anyFresh = anyFresh || fresh
			draws = append(draws, childDraw{at: at, buf: buf})
			menuID = menu.ID()
		}
	}
	menuChanged := menuID != d.menuShown
	d.menuShown = menuID

	if !anyFresh && !menuChanged && d.reusable(width, height) {
		return nil
	}

	frame := NewBuffer(width, height, PixelGray)
	if err := compose(frame, draws); err != nil {
		return d.storeFailed(frame)
	}
	return d.store(frame)
}

// Children implements Widget.
func (d *Desktop) Children() []Widget {
	out := make([]Widget, len(d.windows))
	for i, w := range d.windows {
		out[i] = w
	}
	return out
}

// MinBounds implements Widget.
func (d *Desktop) MinBounds() Bounds {
	return d.size
}

// HandleMouseEvent implements Widget.
func (d *Desktop) HandleMouseEvent(abs, rel Position, kind MouseEventKind, reg *CallbackRegistrar) {
	d.route(abs, kind, reg)
}

func (d *Desktop) indexOf(w *Window) int {
	for i, x := range d.windows {
		if x == w {
			return i
		}
	}
	return -1
}
