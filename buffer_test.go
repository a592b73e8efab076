package modesto

import (
	"errors"
	"image/color"
	"testing"
)

func patternBuffer(w, h int) *Buffer {
	b := NewBuffer(w, h, PixelTransparent)
	for i := range b.Pix {
		b.Pix[i] = Pixel{R: uint8(i), G: uint8(i * 3), B: uint8(i * 7), A: 255}
	}
	return b
}

func TestNewBufferFill(t *testing.T) {
	b := NewBuffer(4, 3, PixelGray)
	if len(b.Pix) != 12 {
		t.Fatalf("len(Pix) = %d, want 12", len(b.Pix))
	}
	if !b.IsSolid(PixelGray) {
		t.Error("expected solid gray buffer")
	}
	if z := NewBuffer(-1, 5, PixelRed); z.Width != 0 || len(z.Pix) != 0 {
		t.Errorf("negative width: got %dx%d with %d pixels", z.Width, z.Height, len(z.Pix))
	}
}

func TestBlitIdentity(t *testing.T) {
	src := patternBuffer(5, 4)
	dst := NewBuffer(5, 4, PixelWhite)
	if err := Blit(dst, 0, 0, src); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("pixel %d = %v, want %v", i, dst.Pix[i], src.Pix[i])
		}
	}
}

func TestBlitOffset(t *testing.T) {
	src := NewBuffer(2, 2, PixelBlack)
	dst := NewBuffer(5, 5, PixelWhite)
	if err := Blit(dst, 3, 1, src); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := PixelWhite
			if x >= 3 && x < 5 && y >= 1 && y < 3 {
				want = PixelBlack
			}
			if got := dst.PixelAt(x, y); got != want {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBlitCopiesAlphaVerbatim(t *testing.T) {
	src := NewBuffer(1, 1, PixelTransparent)
	dst := NewBuffer(3, 3, PixelWhite)
	if err := Blit(dst, 1, 1, src); err != nil {
		t.Fatal(err)
	}
	if got := dst.PixelAt(1, 1); got != PixelTransparent {
		t.Errorf("blitted pixel = %v, want transparent", got)
	}
}

func TestBlitFailsClosed(t *testing.T) {
	tests := []struct {
		name       string
		x, y       int
		srcW, srcH int
		dstW, dstH int
	}{
		{"too wide", 0, 0, 11, 5, 10, 10},
		{"too tall", 0, 0, 5, 11, 10, 10},
		{"offset right", 6, 0, 5, 5, 10, 10},
		{"offset bottom", 0, 8, 5, 5, 10, 10},
		{"negative x", -1, 0, 2, 2, 10, 10},
		{"negative y", 0, -3, 2, 2, 10, 10},
		{"empty destination", 0, 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := NewBuffer(tt.dstW, tt.dstH, PixelWhite)
			err := Blit(dst, tt.x, tt.y, patternBuffer(tt.srcW, tt.srcH))
			if !errors.Is(err, ErrLayoutOverflow) {
				t.Fatalf("err = %v, want ErrLayoutOverflow", err)
			}
			var oe *OverflowError
			if !errors.As(err, &oe) {
				t.Fatalf("err %T is not *OverflowError", err)
			}
			if oe.At != (Position{tt.x, tt.y}) || oe.Src != (Bounds{tt.srcW, tt.srcH}) {
				t.Errorf("OverflowError = %+v", oe)
			}
			if len(dst.Pix) != tt.dstW*tt.dstH {
				t.Errorf("len(Pix) = %d, want %d", len(dst.Pix), tt.dstW*tt.dstH)
			}
			if !dst.IsSolid(PixelRed) {
				t.Error("destination should be flooded red")
			}
		})
	}
}

func TestBlitExactFit(t *testing.T) {
	dst := NewBuffer(10, 10, PixelWhite)
	if err := Blit(dst, 7, 7, NewBuffer(3, 3, PixelBlack)); err != nil {
		t.Fatalf("exact fit at the corner should succeed: %v", err)
	}
	if err := Blit(dst, 10, 10, NewBuffer(0, 0, PixelBlack)); err != nil {
		t.Fatalf("empty source at the far corner should succeed: %v", err)
	}
}

func TestColorizeBoundaries(t *testing.T) {
	fg := Color{10, 200, 30}
	bg := Color{250, 5, 100}
	out := Colorize([]uint8{0, 255, 0, 255}, fg, bg)
	for i, p := range out {
		want := bg.Pixel()
		if i%2 == 1 {
			want = fg.Pixel()
		}
		if p != want {
			t.Errorf("pixel %d = %v, want %v", i, p, want)
		}
	}
}

func TestColorizeBlend(t *testing.T) {
	tests := []struct {
		alpha uint8
		want  uint8
	}{
		{0, 255},
		{51, 204},
		{128, 127},
		{255, 0},
	}
	for _, tt := range tests {
		p := Colorize([]uint8{tt.alpha}, ColorBlack, ColorWhite)[0]
		if p.R != tt.want || p.G != tt.want || p.B != tt.want || p.A != 255 {
			t.Errorf("alpha %d: got %v, want gray %d", tt.alpha, p, tt.want)
		}
	}
}

func TestPixelARGB(t *testing.T) {
	tests := []struct {
		p    Pixel
		want uint32
	}{
		{PixelBlack, 0xFF000000},
		{PixelWhite, 0xFFFFFFFF},
		{PixelRed, 0xFFFF0000},
		{Pixel{0x12, 0x34, 0x56, 0x78}, 0x78123456},
		{PixelTransparent, 0},
	}
	for _, tt := range tests {
		if got := tt.p.ARGB(); got != tt.want {
			t.Errorf("%v.ARGB() = %#08x, want %#08x", tt.p, got, tt.want)
		}
	}
}

func TestBufferARGBAndBytes(t *testing.T) {
	b := NewBuffer(2, 1, PixelTransparent)
	b.Set(0, 0, Pixel{1, 2, 3, 4})
	b.Set(1, 0, PixelWhite)

	argb := b.ARGB()
	if argb[0] != 0x04010203 || argb[1] != 0xFFFFFFFF {
		t.Errorf("ARGB = %#x", argb)
	}
	raw := b.RGBABytes()
	want := []byte{1, 2, 3, 4, 255, 255, 255, 255}
	for i := range want {
		if raw[i] != want[i] {
			t.Fatalf("RGBABytes = %v, want %v", raw, want)
		}
	}
}

func TestBufferImage(t *testing.T) {
	b := NewBuffer(3, 2, PixelGray)
	if r := b.Bounds(); r.Dx() != 3 || r.Dy() != 2 {
		t.Errorf("Bounds = %v", r)
	}
	c := b.At(2, 1).(color.NRGBA)
	if c != (color.NRGBA{128, 128, 128, 255}) {
		t.Errorf("At = %v", c)
	}
	if got := b.PixelAt(3, 0); got != PixelTransparent {
		t.Errorf("out of range PixelAt = %v, want transparent", got)
	}
}

func TestBufferBorder(t *testing.T) {
	b := NewBuffer(4, 3, PixelWhite)
	b.Border(PixelBlack)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			edge := x == 0 || y == 0 || x == 3 || y == 2
			want := PixelWhite
			if edge {
				want = PixelBlack
			}
			if got := b.PixelAt(x, y); got != want {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBufferClone(t *testing.T) {
	b := NewBuffer(2, 2, PixelWhite)
	c := b.Clone()
	c.Set(0, 0, PixelBlack)
	if b.PixelAt(0, 0) != PixelWhite {
		t.Error("Clone shares pixels with the original")
	}
}
