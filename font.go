package modesto

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph is a single-channel bitmap for one character. Pix holds
// Width*Height intensities (0 = background, 255 = foreground), row-major.
// RightOffset is the extra advance after the glyph box.
type Glyph struct {
	Width       int
	Height      int
	RightOffset int
	Pix         []uint8
}

// Advance returns the horizontal distance consumed by the glyph.
func (g Glyph) Advance() int {
	return g.Width + g.RightOffset
}

// Fallback glyph metrics for characters missing from a font.
const (
	fallbackGlyphWidth   = 8
	fallbackGlyphHeight  = 16
	fallbackGlyphAdvance = 1
)

// fallbackGlyph is the blank box substituted for unknown characters.
var fallbackGlyph = Glyph{
	Width:       fallbackGlyphWidth,
	Height:      fallbackGlyphHeight,
	RightOffset: fallbackGlyphAdvance,
	Pix:         make([]uint8, fallbackGlyphWidth*fallbackGlyphHeight),
}

// FontProvider looks glyphs up by character.
type FontProvider interface {
	Glyph(r rune) (Glyph, bool)
}

// glyphFor returns the glyph for r, or the blank fallback when f lacks it.
func glyphFor(f FontProvider, r rune) Glyph {
	if f != nil {
		if g, ok := f.Glyph(r); ok {
			return g
		}
	}
	return fallbackGlyph
}

// PixelFont is an in-memory charset.
type PixelFont struct {
	SizeInPoints int
	charset      map[rune]Glyph
}

// NewPixelFont creates an empty font.
func NewPixelFont(sizeInPoints int) *PixelFont {
	return &PixelFont{SizeInPoints: sizeInPoints, charset: make(map[rune]Glyph)}
}

// Add registers g for r, replacing any previous glyph.
func (f *PixelFont) Add(r rune, g Glyph) {
	if len(g.Pix) != g.Width*g.Height {
		panic("modesto: glyph pixel count does not match its size")
	}
	f.charset[r] = g
}

// Glyph implements FontProvider.
func (f *PixelFont) Glyph(r rune) (Glyph, bool) {
	g, ok := f.charset[r]
	return g, ok
}

// Len returns the number of glyphs in the charset.
func (f *PixelFont) Len() int {
	return len(f.charset)
}

// FontFromFace rasterizes the given runes of a font.Face into a PixelFont.
// Every glyph box is as tall as the face's line height so that a row of
// text shares one baseline.
func FontFromFace(face font.Face, sizeInPoints int, runes string) *PixelFont {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	lineHeight := m.Height.Ceil()
	if d := ascent + m.Descent.Ceil(); d > lineHeight {
		lineHeight = d
	}

	f := NewPixelFont(sizeInPoints)
	for _, r := range runes {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, ascent), r)
		if !ok {
			continue
		}
		w := dr.Dx()
		adv := advance.Round()
		if dr.Min.X > 0 {
			w += dr.Min.X
		}
		g := Glyph{
			Width:       w,
			Height:      lineHeight,
			RightOffset: max(adv-w, 0),
			Pix:         make([]uint8, w*lineHeight),
		}
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			if y < 0 || y >= lineHeight {
				continue
			}
			for x := dr.Min.X; x < dr.Max.X; x++ {
				if x < 0 || x >= w {
					continue
				}
				src := image.Pt(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y)
				a := color.AlphaModel.Convert(mask.At(src.X, src.Y)).(color.Alpha).A
				g.Pix[y*w+x] = a
			}
		}
		f.Add(r, g)
	}
	return f
}

// printableASCII is every printable 7-bit character.
const printableASCII = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

var defaultFont *PixelFont

// DefaultFont returns the built-in 7x13 bitmap font covering printable
// ASCII. It is built on first use and shared afterwards.
func DefaultFont() *PixelFont {
	if defaultFont == nil {
		defaultFont = FontFromFace(basicfont.Face7x13, 12, printableASCII)
	}
	return defaultFont
}
