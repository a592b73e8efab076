package modesto

// InjectPress queues a left button press at the given screen coordinates.
// Each injected state replaces the real pointer state for one tick.
func (d *Desktop) InjectPress(x, y int) {
	d.inject(x, y, LMBDown)
}

// InjectMove queues a tick with no button edge at the given screen
// coordinates. Use this between InjectPress and InjectRelease to simulate a
// drag.
func (d *Desktop) InjectMove(x, y int) {
	d.inject(x, y, PointerMove)
}

// InjectRelease queues a left button release at the given screen coordinates.
func (d *Desktop) InjectRelease(x, y int) {
	d.inject(x, y, LMBUp)
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two ticks.
func (d *Desktop) InjectClick(x, y int) {
	d.InjectPress(x, y)
	d.InjectRelease(x, y)
}

// InjectRightClick queues a right button press and release.
func (d *Desktop) InjectRightClick(x, y int) {
	d.inject(x, y, RMBDown)
	d.inject(x, y, RMBUp)
}

// InjectScroll queues one wheel notch, up or down.
func (d *Desktop) InjectScroll(x, y int, up bool) {
	if up {
		d.inject(x, y, ScrollUp)
	} else {
		d.inject(x, y, ScrollDown)
	}
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate ticks, and
// release at (toX, toY). The total sequence consumes `frames` ticks.
// Minimum frames is 2 (press + release).
func (d *Desktop) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	d.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/(steps+1)
		y := fromY + (toY-fromY)*i/(steps+1)
		d.InjectMove(x, y)
	}
	d.InjectRelease(toX, toY)
}

// Injected returns how many synthetic ticks are still queued.
func (d *Desktop) Injected() int {
	return len(d.injectQueue)
}

func (d *Desktop) inject(x, y int, kind MouseEventKind) {
	d.injectQueue = append(d.injectQueue, PointerState{Pos: Position{x, y}, Event: kind})
}

// popInjected removes and returns the oldest queued state.
func (d *Desktop) popInjected() (PointerState, bool) {
	if len(d.injectQueue) == 0 {
		return PointerState{}, false
	}
	ps := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]
	return ps, true
}
