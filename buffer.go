package modesto

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrLayoutOverflow is matched by every *OverflowError.
var ErrLayoutOverflow = errors.New("modesto: layout overflow")

// OverflowError reports a blit whose source rectangle does not fit the
// destination. The destination has already been flooded red when it is
// returned.
type OverflowError struct {
	Dst Bounds
	At  Position
	Src Bounds
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("modesto: layout overflow: %dx%d at (%d,%d) into %dx%d",
		e.Src.Width, e.Src.Height, e.At.X, e.At.Y, e.Dst.Width, e.Dst.Height)
}

// Is makes errors.Is(err, ErrLayoutOverflow) true.
func (e *OverflowError) Is(target error) bool {
	return target == ErrLayoutOverflow
}

// Buffer is a row-major pixel grid. Len(Pix) is always Width*Height.
//
// Buffers returned from Render are shared with the widget's cache; callers
// read them and blit them but must not write to them.
type Buffer struct {
	Pix    []Pixel
	Width  int
	Height int
}

// NewBuffer allocates a buffer filled with fill.
func NewBuffer(width, height int, fill Pixel) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{Pix: make([]Pixel, width*height), Width: width, Height: height}
	if fill != (Pixel{}) {
		b.Fill(fill)
	}
	return b
}

// errorBuffer is the fail-closed sentinel: every pixel opaque red.
func errorBuffer(width, height int) *Buffer {
	return NewBuffer(width, height, PixelRed)
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() Bounds {
	return Bounds{b.Width, b.Height}
}

// Fill sets every pixel to p.
func (b *Buffer) Fill(p Pixel) {
	for i := range b.Pix {
		b.Pix[i] = p
	}
}

// PixelAt returns the pixel at (x, y), or transparent when out of range.
func (b *Buffer) PixelAt(x, y int) Pixel {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return Pixel{}
	}
	return b.Pix[y*b.Width+x]
}

// Set writes the pixel at (x, y). Out of range writes are ignored.
func (b *Buffer) Set(x, y int, p Pixel) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = p
}

// HLine draws a horizontal 1px line of length n starting at (x, y).
func (b *Buffer) HLine(x, y, n int, p Pixel) {
	for i := 0; i < n; i++ {
		b.Set(x+i, y, p)
	}
}

// VLine draws a vertical 1px line of length n starting at (x, y).
func (b *Buffer) VLine(x, y, n int, p Pixel) {
	for i := 0; i < n; i++ {
		b.Set(x, y+i, p)
	}
}

// Border draws a 1px frame along the buffer edges.
func (b *Buffer) Border(p Pixel) {
	if b.Width == 0 || b.Height == 0 {
		return
	}
	b.HLine(0, 0, b.Width, p)
	b.HLine(0, b.Height-1, b.Width, p)
	b.VLine(0, 0, b.Height, p)
	b.VLine(b.Width-1, 0, b.Height, p)
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{Pix: make([]Pixel, len(b.Pix)), Width: b.Width, Height: b.Height}
	copy(out.Pix, b.Pix)
	return out
}

// IsSolid reports whether every pixel equals p.
func (b *Buffer) IsSolid(p Pixel) bool {
	for _, q := range b.Pix {
		if q != p {
			return false
		}
	}
	return true
}

// ARGB converts the buffer into one 32-bit ARGB word per pixel, row-major.
func (b *Buffer) ARGB() []uint32 {
	out := make([]uint32, len(b.Pix))
	for i, p := range b.Pix {
		out[i] = p.ARGB()
	}
	return out
}

// RGBABytes flattens the buffer into R,G,B,A bytes, the layout
// ebiten.Image.WritePixels and image.RGBA use.
func (b *Buffer) RGBABytes() []byte {
	out := make([]byte, 4*len(b.Pix))
	for i, p := range b.Pix {
		out[4*i] = p.R
		out[4*i+1] = p.G
		out[4*i+2] = p.B
		out[4*i+3] = p.A
	}
	return out
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color {
	p := b.PixelAt(x, y)
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// Blit copies src into dst with its top-left corner at (x, y). Pixels are
// copied verbatim, alpha included; there is no blending.
//
// Blit fails closed: when src does not fit entirely inside dst (including
// negative offsets) nothing is copied, every pixel of dst is set to opaque
// red and an *OverflowError is returned.
func Blit(dst *Buffer, x, y int, src *Buffer) error {
	if x < 0 || y < 0 || x+src.Width > dst.Width || y+src.Height > dst.Height {
		dst.Fill(PixelRed)
		err := &OverflowError{Dst: dst.Size(), At: Position{x, y}, Src: src.Size()}
		if globalDebug {
			debugLogf("%v", err)
		}
		return err
	}
	for row := 0; row < src.Height; row++ {
		d := (y+row)*dst.Width + x
		s := row * src.Width
		copy(dst.Pix[d:d+src.Width], src.Pix[s:s+src.Width])
	}
	return nil
}

// Colorize turns single-channel glyph intensities into opaque pixels by
// interpolating each channel from bg (intensity 0) to fg (intensity 255).
func Colorize(glyph []uint8, fg, bg Color) []Pixel {
	out := make([]Pixel, len(glyph))
	for i, a := range glyph {
		out[i] = Pixel{
			R: lerp8(bg.R, fg.R, a),
			G: lerp8(bg.G, fg.G, a),
			B: lerp8(bg.B, fg.B, a),
			A: 255,
		}
	}
	return out
}

func lerp8(from, to, a uint8) uint8 {
	return uint8(int32(from) + (int32(to)-int32(from))*int32(a)/255)
}
