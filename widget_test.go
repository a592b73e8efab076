package modesto

import (
	"errors"
	"testing"
)

// lazyWidget returns nil from Render without ever having rendered.
type lazyWidget struct {
	identity
}

func (w *lazyWidget) Render(width, height int) *Buffer { return nil }
func (w *lazyWidget) Children() []Widget { return nil }
func (w *lazyWidget) MinBounds() Bounds { return Bounds{4, 4} }
func (w *lazyWidget) Cache() (*Buffer, error) { return nil, ErrNoCache }
func (w *lazyWidget) HandleMouseEvent(abs, rel Position, kind MouseEventKind, reg *CallbackRegistrar) {
}

func TestWidgetIDsUnique(t *testing.T) {
	seen := make(map[WidgetID]bool)
	for i := 0; i < 100; i++ {
		id := NewRect(1, 1).ID()
		if id == 0 {
			t.Fatal("widget ID 0 is reserved")
		}
		if seen[id] {
			t.Fatalf("duplicate widget ID %d", id)
		}
		seen[id] = true
	}
}

func TestRenderCacheLifecycle(t *testing.T) {
	c := newRenderCache()
	if c.reusable(1, 1) {
		t.Error("new cache must not be reusable")
	}
	if _, err := c.Cache(); !errors.Is(err, ErrNoCache) {
		t.Errorf("Cache err = %v, want ErrNoCache", err)
	}
	buf := c.store(NewBuffer(3, 2, PixelWhite))
	if !c.reusable(3, 2) {
		t.Error("cache should be reusable after store")
	}
	if c.reusable(2, 3) {
		t.Error("cache must not be reusable at another size")
	}
	if got, _ := c.Cache(); got != buf {
		t.Error("Cache should return the stored buffer")
	}
	c.MarkDirty()
	if c.reusable(3, 2) || !c.NeedsRedraw() {
		t.Error("MarkDirty should invalidate the cache")
	}
	c.storeFailed(NewBuffer(3, 2, PixelRed))
	if c.reusable(3, 2) {
		t.Error("a failed render must stay dirty")
	}
}

func TestDrawChildFallsBackToRed(t *testing.T) {
	buf, fresh := drawChild(&lazyWidget{identity: newIdentity()}, 4, 3)
	if !fresh {
		t.Error("fallback buffer should count as fresh")
	}
	if buf.Width != 4 || buf.Height != 3 || !buf.IsSolid(PixelRed) {
		t.Errorf("fallback = %dx%d, want solid red 4x3", buf.Width, buf.Height)
	}
}

func TestDrawChildReusesCache(t *testing.T) {
	r := NewRect(5, 5)
	first, fresh := drawChild(r, 5, 5)
	if !fresh {
		t.Fatal("first draw should be fresh")
	}
	second, fresh := drawChild(r, 5, 5)
	if fresh || second != first {
		t.Error("second draw should reuse the cached buffer")
	}
}

func TestComposeStopsOnOverflow(t *testing.T) {
	dst := NewBuffer(4, 4, PixelWhite)
	err := compose(dst, []childDraw{
		{at: Position{0, 0}, buf: NewBuffer(2, 2, PixelBlack)},
		{at: Position{3, 3}, buf: NewBuffer(2, 2, PixelBlack)},
		{at: Position{0, 0}, buf: NewBuffer(1, 1, PixelGray)},
	})
	if !errors.Is(err, ErrLayoutOverflow) {
		t.Fatalf("err = %v, want ErrLayoutOverflow", err)
	}
	if !dst.IsSolid(PixelRed) {
		t.Error("later draws must not paint over the red sentinel")
	}
}

func TestWalkAndSubtreeIDs(t *testing.T) {
	w := NewWindow("T", 100, 60, 0, 0)
	ids := subtreeIDs(w)
	// window, chrome, close button, title, body, top bar
	if len(ids) != 6 {
		t.Fatalf("subtree size = %d, want 6", len(ids))
	}
	want := []WidgetID{w.ID(), w.Chrome().ID(), w.Chrome().Button().ID(), w.Chrome().Title().ID(), w.Body().ID(), w.TopBar().ID()}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], want[i])
		}
	}

	visited := 0
	walk(w, func(Widget) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("walk visited %d widgets after stop, want 3", visited)
	}
}
