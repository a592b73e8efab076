package modesto

// --- Pointer sampling ---

// PointerState is one tick of input: where the pointer is and at most one
// button or wheel edge.
type PointerState struct {
	Pos   Position
	Event MouseEventKind
}

// PointerTracker turns raw button levels and wheel deltas into edge events.
// It emits at most one edge per tick; edges that happen on the same tick are
// queued and reported on the following ticks in a fixed order (left, right,
// middle, wheel).
type PointerTracker struct {
	left, right, middle bool
	pending             []MouseEventKind
}

// Sample records the current input levels and returns this tick's state.
// Ticks without an edge report PointerMove.
func (t *PointerTracker) Sample(pos Position, left, right, middle bool, wheelY float64) PointerState {
	if left != t.left {
		t.left = left
		t.push(left, LMBDown, LMBUp)
	}
	if right != t.right {
		t.right = right
		t.push(right, RMBDown, RMBUp)
	}
	if middle != t.middle {
		t.middle = middle
		if middle {
			t.pending = append(t.pending, ScrollClick)
		}
	}
	switch {
	case wheelY > 0:
		t.pending = append(t.pending, ScrollUp)
	case wheelY < 0:
		t.pending = append(t.pending, ScrollDown)
	}

	if len(t.pending) == 0 {
		return PointerState{Pos: pos, Event: PointerMove}
	}
	ev := t.pending[0]
	copy(t.pending, t.pending[1:])
	t.pending = t.pending[:len(t.pending)-1]
	return PointerState{Pos: pos, Event: ev}
}

// Pending returns how many edges are waiting to be reported.
func (t *PointerTracker) Pending() int {
	return len(t.pending)
}

func (t *PointerTracker) push(down bool, press, release MouseEventKind) {
	if down {
		t.pending = append(t.pending, press)
	} else {
		t.pending = append(t.pending, release)
	}
}

// --- Routing ---

// route delivers one event. An open fold-out menu sees events first, then the
// global menu band, then the windows front to back. The first window whose
// rectangle contains pos receives the event; a press also raises it.
func (d *Desktop) route(pos Position, kind MouseEventKind, reg *CallbackRegistrar) {
	focused := d.Focused()
	if focused == nil {
		if d.debug {
			debugLogf("%s at (%d,%d) on empty desktop", kind, pos.X, pos.Y)
		}
		return
	}

	bar := focused.TopBar()
	if menu, at, ok := bar.OpenMenu(); ok {
		if RectAt(at, menu.MinBounds()).Contains(pos) {
			d.deliver(menu, pos, pos.Sub(at), kind, reg)
			return
		}
		if kind.IsPress() && pos.Y >= TopBarHeight {
			bar.CloseMenus()
		}
	}

	if pos.Y < TopBarHeight {
		d.deliver(bar, pos, pos, kind, reg)
		return
	}

	i := d.windowAt(pos)
	if i < 0 {
		if d.debug {
			debugLogf("%s at (%d,%d) hit no window", kind, pos.X, pos.Y)
		}
		return
	}
	w := d.windows[i]
	d.deliver(w, pos, pos.Sub(w.Position()), kind, reg)
	if kind.IsPress() {
		d.Raise(w)
	}
}

// windowAt returns the index of the first window containing pos, or -1.
func (d *Desktop) windowAt(pos Position) int {
	for i, w := range d.windows {
		if w.Bounds().Contains(pos) {
			return i
		}
	}
	return -1
}

func (d *Desktop) deliver(target Widget, abs, rel Position, kind MouseEventKind, reg *CallbackRegistrar) {
	if d.debug {
		debugLogf("%s at (%d,%d) -> %T %d rel=(%d,%d)",
			kind, abs.X, abs.Y, target, target.ID(), rel.X, rel.Y)
	}
	target.HandleMouseEvent(abs, rel, kind, reg)
	if d.sink != nil {
		d.sink.EmitEvent(RoutedEvent{
			Kind:     kind,
			Target:   target.ID(),
			Absolute: abs,
			Relative: rel,
		})
	}
}
