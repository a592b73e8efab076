package modesto

import "testing"

func TestRectContainsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 5, Height: 3}
	tests := []struct {
		p    Position
		want bool
	}{
		{Position{10, 20}, true},
		{Position{14, 22}, true},
		{Position{15, 22}, false},
		{Position{14, 23}, false},
		{Position{9, 20}, false},
		{Position{10, 19}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if (Rect{Width: 0, Height: 5}).Contains(Position{}) {
		t.Error("empty rect should contain nothing")
	}
}

func TestPositionArithmetic(t *testing.T) {
	a, b := Position{7, 3}, Position{2, 5}
	if got := a.Sub(b); got != (Position{5, -2}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Add(b); got != (Position{9, 8}) {
		t.Errorf("Add = %+v", got)
	}
	if got := RectAt(a, Bounds{4, 6}); got != (Rect{7, 3, 4, 6}) {
		t.Errorf("RectAt = %+v", got)
	}
}

func TestMouseEventKind(t *testing.T) {
	presses := map[MouseEventKind]bool{
		PointerMove: false,
		LMBDown:     true,
		LMBUp:       false,
		RMBDown:     true,
		RMBUp:       false,
		ScrollUp:    false,
		ScrollDown:  false,
		ScrollClick: true,
	}
	for k, want := range presses {
		if k.IsPress() != want {
			t.Errorf("%s.IsPress() = %v, want %v", k, !want, want)
		}
	}
	if s := MouseEventKind(99).String(); s != "MouseEventKind(?)" {
		t.Errorf("unknown kind String = %q", s)
	}
}

func TestPixelColor(t *testing.T) {
	if got := (Pixel{0x11, 0x22, 0x33, 0x44}).ARGB(); got != 0x44112233 {
		t.Errorf("ARGB = %#x", got)
	}
	r, g, b, a := PixelWhite.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("white RGBA = %x %x %x %x", r, g, b, a)
	}
	r, _, _, a = PixelTransparent.RGBA()
	if r != 0 || a != 0 {
		t.Errorf("transparent RGBA = %x %x", r, a)
	}
	if p := ColorBlack.Pixel(); p != PixelBlack {
		t.Errorf("ColorBlack.Pixel() = %+v", p)
	}
}
