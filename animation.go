package modesto

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// WindowTween glides a window to a target position. The window is drawn as
// a drag ghost while the tween runs and returns to normal rendering when it
// finishes. If the window is closed, the tween stops immediately.
//
// Tweens registered with Desktop.GlideWindow are advanced by Desktop.Update;
// tweens built with TweenWindow are advanced by the caller.
type WindowTween struct {
	tweens  [2]*gween.Tween
	target  *Window
	started bool
	Done    bool
}

// TweenWindow creates a tween that moves w to (toX, toY) over duration
// seconds using the easing function.
func TweenWindow(w *Window, toX, toY int, duration float32, fn ease.TweenFunc) *WindowTween {
	p := w.Position()
	t := &WindowTween{target: w}
	t.tweens[0] = gween.New(float32(p.X), float32(toX), duration, fn)
	t.tweens[1] = gween.New(float32(p.Y), float32(toY), duration, fn)
	return t
}

// Update advances the tween by dt seconds and moves the window.
func (t *WindowTween) Update(dt float32) {
	if t.Done {
		return
	}
	if t.target.Closed() {
		t.Done = true
		return
	}
	if !t.started {
		t.started = true
		t.target.SetMoving(true)
	}

	x, xDone := t.tweens[0].Update(dt)
	y, yDone := t.tweens[1].Update(dt)
	t.target.SetPosition(Position{
		X: int(math.Round(float64(x))),
		Y: int(math.Round(float64(y))),
	})
	if xDone && yDone {
		t.Done = true
		t.target.SetMoving(false)
	}
}

// GlideWindow starts a tween that moves w to (toX, toY) and advances it on
// every Update until it finishes.
func (d *Desktop) GlideWindow(w *Window, toX, toY int, duration float32, fn ease.TweenFunc) *WindowTween {
	t := TweenWindow(w, toX, toY, duration, fn)
	d.tweens = append(d.tweens, t)
	return t
}

// updateTweens advances registered tweens and forgets finished ones.
func (d *Desktop) updateTweens(dt float32) {
	if len(d.tweens) == 0 {
		return
	}
	kept := d.tweens[:0]
	for _, t := range d.tweens {
		t.Update(dt)
		if !t.Done {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(d.tweens); i++ {
		d.tweens[i] = nil
	}
	d.tweens = kept
}
