package modesto

// Top bar geometry.
const (
	topBarButtonX   = 10
	topBarButtonY   = 2
	topBarButtonGap = 20
	menuPadding     = 4
)

// MenuEntry is one row of a fold-out menu.
type MenuEntry struct {
	Label  string
	Action func()
}

// --- FoldOutMenu ---

// FoldOutMenu is the list that drops down under an open top-bar button.
// It is as wide as its widest label plus padding and exactly
// entries x row height tall.
type FoldOutMenu struct {
	identity
	renderCache

	button    WidgetID
	entries   []MenuEntry
	labels    []*TextWidget
	highlight int
}

func newFoldOutMenu(button WidgetID, entries []MenuEntry, font FontProvider) *FoldOutMenu {
	m := &FoldOutMenu{
		identity:    newIdentity(),
		renderCache: newRenderCache(),
		button:      button,
		entries:     entries,
		highlight:   -1,
	}
	for _, e := range entries {
		t := NewText(e.Label, font, ColorBlack, ColorWhite)
		t.SetCaching(true)
		m.labels = append(m.labels, t)
	}
	return m
}

// Entries returns the menu rows.
func (m *FoldOutMenu) Entries() []MenuEntry {
	return m.entries
}

// Highlighted returns the index of the pressed row, or -1.
func (m *FoldOutMenu) Highlighted() int {
	return m.highlight
}

// rowHeight is the tallest label plus vertical padding.
func (m *FoldOutMenu) rowHeight() int {
	h := 0
	for _, l := range m.labels {
		h = max(h, l.MinBounds().Height)
	}
	if h == 0 {
		return 0
	}
	return h + menuPadding
}

func (m *FoldOutMenu) setHighlight(row int) {
	if row == m.highlight {
		return
	}
	if m.highlight >= 0 && m.highlight < len(m.labels) {
		m.labels[m.highlight].SetColors(ColorBlack, ColorWhite)
	}
	if row >= 0 && row < len(m.labels) {
		m.labels[row].SetColors(ColorWhite, ColorBlack)
	}
	m.highlight = row
	m.MarkDirty()
}

// Render implements Widget.
func (m *FoldOutMenu) Render(width, height int) *Buffer {
	rh := m.rowHeight()
	draws := make([]childDraw, 0, len(m.labels))
	anyFresh := false
	for i, l := range m.labels {
		lb := l.MinBounds()
		b, fresh := drawChild(l, lb.Width, lb.Height)
		anyFresh = anyFresh || fresh
		draws = append(draws, childDraw{at: Position{menuPadding, i*rh + menuPadding/2}, buf: b})
	}
	if !anyFresh && m.reusable(width, height) {
		return nil
	}

	buf := NewBuffer(width, height, PixelWhite)
	if m.highlight >= 0 {
		for y := m.highlight * rh; y < (m.highlight+1)*rh; y++ {
			buf.HLine(0, y, width, PixelBlack)
		}
	}
	buf.Border(PixelBlack)
	if err := compose(buf, draws); err != nil {
		return m.storeFailed(buf)
	}
	return m.store(buf)
}

// Children implements Widget.
func (m *FoldOutMenu) Children() []Widget {
	out := make([]Widget, len(m.labels))
	for i, l := range m.labels {
		out[i] = l
	}
	return out
}

// MinBounds implements Widget.
func (m *FoldOutMenu) MinBounds() Bounds {
	if len(m.labels) == 0 {
		return Bounds{}
	}
	w := 0
	for _, l := range m.labels {
		w = max(w, l.MinBounds().Width)
	}
	return Bounds{Width: w + 2*menuPadding, Height: len(m.labels) * m.rowHeight()}
}

// HandleMouseEvent implements Widget. A press highlights the row under the
// pointer; releasing inside that row activates it and closes the menu.
func (m *FoldOutMenu) HandleMouseEvent(abs, rel Position, kind MouseEventKind, reg *CallbackRegistrar) {
	rh := m.rowHeight()
	if kind != LMBDown || rh == 0 || rel.Y < 0 {
		return
	}
	row := rel.Y / rh
	if row >= len(m.entries) {
		return
	}
	m.setHighlight(row)

	self, button := m.id, m.button
	origin := abs.Sub(rel)
	rowRect := Rect{X: origin.X, Y: origin.Y + row*rh, Width: m.MinBounds().Width, Height: rh}
	reg.Defer(self, func(pos Position, kind MouseEventKind) Reaction {
		if kind != LMBUp {
			return Keep()
		}
		if rowRect.Contains(pos) {
			return Discard(
				Intent{Target: self, Action: ActionActivate, Index: row},
				Intent{Target: button, Action: ActionClose},
			)
		}
		return Discard(Intent{Target: self, Action: ActionRelease})
	})
}

// Receive implements Receiver.
func (m *FoldOutMenu) Receive(in Intent) {
	switch in.Action {
	case ActionRelease:
		m.setHighlight(-1)
	case ActionActivate:
		// Closing the menu clears the highlight, which cancels the press.
		if in.Index != m.highlight {
			return
		}
		m.setHighlight(-1)
		if in.Index >= 0 && in.Index < len(m.entries) && m.entries[in.Index].Action != nil {
			m.entries[in.Index].Action()
		}
	}
}

// --- TopBarButton ---

// TopBarButton is a labelled entry of the global menu. Clicking it toggles
// its fold-out menu.
type TopBarButton struct {
	identity
	renderCache

	label  *TextWidget
	menu   *FoldOutMenu
	opened bool
}

// NewTopBarButton creates a button with the given label and fold-out entries.
// A nil font uses DefaultFont.
func NewTopBarButton(label string, entries []MenuEntry, font FontProvider) *TopBarButton {
	b := &TopBarButton{
		identity:    newIdentity(),
		renderCache: newRenderCache(),
	}
	b.label = NewText(label, font, ColorBlack, ColorWhite)
	b.label.SetCaching(true)
	b.menu = newFoldOutMenu(b.id, entries, font)
	return b
}

// Label returns the button's text widget.
func (b *TopBarButton) Label() *TextWidget {
	return b.label
}

// Menu returns the fold-out menu.
func (b *TopBarButton) Menu() *FoldOutMenu {
	return b.menu
}

// Opened reports whether the fold-out menu is showing.
func (b *TopBarButton) Opened() bool {
	return b.opened
}

// SetOpen shows or hides the fold-out menu. An open button draws its label
// inverted.
func (b *TopBarButton) SetOpen(open bool) {
	if open == b.opened {
		return
	}
	b.opened = open
	if open {
		b.label.SetColors(ColorWhite, ColorBlack)
	} else {
		b.label.SetColors(ColorBlack, ColorWhite)
		b.menu.setHighlight(-1)
	}
	b.MarkDirty()
}

// Render implements Widget.
func (b *TopBarButton) Render(width, height int) *Buffer {
	lbl, fresh := drawChild(b.label, width, height)
	if !fresh && b.reusable(width, height) {
		return nil
	}
	return b.store(lbl)
}

// Children implements Widget.
func (b *TopBarButton) Children() []Widget {
	return []Widget{b.label, b.menu}
}

// MinBounds implements Widget.
func (b *TopBarButton) MinBounds() Bounds {
	return b.label.MinBounds()
}

// HandleMouseEvent implements Widget.
func (b *TopBarButton) HandleMouseEvent(abs, rel Position, kind MouseEventKind, reg *CallbackRegistrar) {
	if kind == LMBDown {
		b.SetOpen(!b.opened)
	}
}

// Receive implements Receiver.
func (b *TopBarButton) Receive(in Intent) {
	if in.Action == ActionClose {
		b.SetOpen(false)
	}
}

// --- TopBar ---

// TopBar is the global menu: buttons laid out left to right with fixed gaps
// and a 1px rule along the bottom edge.
type TopBar struct {
	identity
	renderCache

	buttons []*TopBarButton
}

// NewTopBar creates a top bar with the given buttons.
func NewTopBar(buttons []*TopBarButton) *TopBar {
	for _, b := range buttons {
		if b == nil {
			panic("modesto: cannot add nil top bar button")
		}
	}
	return &TopBar{
		identity:    newIdentity(),
		renderCache: newRenderCache(),
		buttons:     buttons,
	}
}

// AddButton appends a button.
func (t *TopBar) AddButton(b *TopBarButton) {
	if b == nil {
		panic("modesto: cannot add nil top bar button")
	}
	t.buttons = append(t.buttons, b)
	t.MarkDirty()
}

// Buttons returns the buttons. The returned slice MUST NOT be mutated.
func (t *TopBar) Buttons() []*TopBarButton {
	return t.buttons
}

// buttonRects returns each button's rectangle relative to the bar.
func (t *TopBar) buttonRects() []Rect {
	rects := make([]Rect, len(t.buttons))
	x := topBarButtonX
	for i, b := range t.buttons {
		bb := b.MinBounds()
		rects[i] = RectAt(Position{x, topBarButtonY}, bb)
		x += bb.Width + topBarButtonGap
	}
	return rects
}

// Render implements Widget.
func (t *TopBar) Render(width, height int) *Buffer {
	rects := t.buttonRects()
	draws := make([]childDraw, len(t.buttons))
	anyFresh := false
	for i, b := range t.buttons {
		buf, fresh := drawChild(b, rects[i].Width, rects[i].Height)
		anyFresh = anyFresh || fresh
		draws[i] = childDraw{at: rects[i].Origin(), buf: buf}
	}
	if !anyFresh && t.reusable(width, height) {
		return nil
	}

	buf := NewBuffer(width, height, PixelWhite)
	if err := compose(buf, draws); err != nil {
		return t.storeFailed(buf)
	}
	buf.HLine(0, height-1, width, PixelBlack)
	return t.store(buf)
}

// Children implements Widget.
func (t *TopBar) Children() []Widget {
	out := make([]Widget, len(t.buttons))
	for i, b := range t.buttons {
		out[i] = b
	}
	return out
}

// MinBounds implements Widget.
func (t *TopBar) MinBounds() Bounds {
	rects := t.buttonRects()
	w := 2 * topBarButtonX
	if n := len(rects); n > 0 {
		last := rects[n-1]
		w = last.X + last.Width + topBarButtonX
	}
	return Bounds{Width: w, Height: TopBarHeight}
}

// HandleMouseEvent implements Widget. A press on a button toggles it and
// closes every other open button.
func (t *TopBar) HandleMouseEvent(abs, rel Position, kind MouseEventKind, reg *CallbackRegistrar) {
	for i, r := range t.buttonRects() {
		if !r.Contains(rel) {
			continue
		}
		b := t.buttons[i]
		b.HandleMouseEvent(abs, rel.Sub(r.Origin()), kind, reg)
		if b.Opened() {
			for _, other := range t.buttons {
				if other != b {
					other.SetOpen(false)
				}
			}
		}
		return
	}
	if kind.IsPress() {
		t.CloseMenus()
	}
	if globalDebug {
		debugLogf("top bar %s at abs=(%d,%d) rel=(%d,%d) hit no button",
			kind, abs.X, abs.Y, rel.X, rel.Y)
	}
}

// OpenMenu returns the fold-out menu of the open button and where it hangs,
// in bar coordinates (directly below the button).
func (t *TopBar) OpenMenu() (menu *FoldOutMenu, at Position, ok bool) {
	for i, r := range t.buttonRects() {
		if t.buttons[i].Opened() {
			return t.buttons[i].menu, Position{r.X, TopBarHeight}, true
		}
	}
	return nil, Position{}, false
}

// CloseMenus closes every open button.
func (t *TopBar) CloseMenus() {
	for _, b := range t.buttons {
		b.SetOpen(false)
	}
}
