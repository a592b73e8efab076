package modesto

// Bounds is a width/height pair in pixels. Widgets report their minimum
// bounds: the size they render at without visual truncation.
type Bounds struct {
	Width, Height int
}

// Area returns Width*Height.
func (b Bounds) Area() int {
	return b.Width * b.Height
}

// Position is a top-left offset in pixels. During routing a widget sees two
// of these: the absolute screen position and a position relative to itself.
type Position struct {
	X, Y int
}

// Sub returns p translated by -o.
func (p Position) Sub(o Position) Position {
	return Position{p.X - o.X, p.Y - o.Y}
}

// Add returns p translated by o.
func (p Position) Add(o Position) Position {
	return Position{p.X + o.X, p.Y + o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// RectAt builds a Rect from a position and bounds.
func RectAt(p Position, b Bounds) Rect {
	return Rect{X: p.X, Y: p.Y, Width: b.Width, Height: b.Height}
}

// Contains reports whether p lies inside the rectangle. The right and
// bottom edges are exclusive, matching pixel coverage.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Origin returns the top-left corner.
func (r Rect) Origin() Position {
	return Position{r.X, r.Y}
}

// Pixel is one RGBA sample, 8 bits per channel, not premultiplied.
type Pixel struct {
	R, G, B, A uint8
}

// ARGB packs the pixel into a 32-bit word with alpha in the high byte.
func (p Pixel) ARGB() uint32 {
	return uint32(p.A)<<24 | uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// RGBA implements color.Color. Pixels are stored straight; the result is
// alpha-premultiplied.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	a = uint32(p.A) * 0x101
	r = uint32(p.R) * 0x101 * a / 0xffff
	g = uint32(p.G) * 0x101 * a / 0xffff
	b = uint32(p.B) * 0x101 * a / 0xffff
	return
}

// Frequently used pixels.
var (
	PixelBlack       = Pixel{0, 0, 0, 255}
	PixelWhite       = Pixel{255, 255, 255, 255}
	PixelGray        = Pixel{128, 128, 128, 255}
	PixelRed         = Pixel{255, 0, 0, 255}
	PixelTransparent = Pixel{}
)

// Color is an opaque RGB color used for text foreground and background.
type Color struct {
	R, G, B uint8
}

// ColorBlack and ColorWhite are the two named text colors.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
)

// Pixel returns c as an opaque Pixel.
func (c Color) Pixel() Pixel {
	return Pixel{c.R, c.G, c.B, 255}
}

// MouseEventKind identifies a primitive mouse event.
type MouseEventKind uint8

const (
	PointerMove MouseEventKind = iota // no button edge this tick; only callbacks see it
	LMBDown                           // left button pressed
	LMBUp                             // left button released
	RMBDown                           // right button pressed
	RMBUp                             // right button released
	ScrollUp                          // wheel moved away from the user
	ScrollDown                        // wheel moved toward the user
	ScrollClick                       // middle button pressed
)

var mouseEventNames = [...]string{
	PointerMove: "PointerMove",
	LMBDown:     "LMBDown",
	LMBUp:       "LMBUp",
	RMBDown:     "RMBDown",
	RMBUp:       "RMBUp",
	ScrollUp:    "ScrollUp",
	ScrollDown:  "ScrollDown",
	ScrollClick: "ScrollClick",
}

func (k MouseEventKind) String() string {
	if int(k) < len(mouseEventNames) {
		return mouseEventNames[k]
	}
	return "MouseEventKind(?)"
}

// IsPress reports whether k is a button-down edge.
func (k MouseEventKind) IsPress() bool {
	return k == LMBDown || k == RMBDown || k == ScrollClick
}

// TextAlign controls horizontal text placement inside the requested width.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// Layout constants shared by the built-in widgets.
const (
	TopBarHeight       = 20 // height of the global menu band
	WindowChromeHeight = 20 // height of a window's title bar
)
