package modesto

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidLayout is wrapped by every Validate failure.
var ErrInvalidLayout = errors.New("modesto: invalid layout")

// CommandClose is the built-in menu command that closes the entry's window.
const CommandClose = "close"

// Layout is a desktop description loaded from TOML:
//
//	[screen]
//	title = "DESKTOP"
//	width = 720
//	height = 480
//
//	[[window]]
//	title = " Title "
//	x = 50
//	y = 50
//	width = 500
//	height = 300
//
//	  [[window.menu]]
//	  label = "File"
//
//	    [[window.menu.entry]]
//	    label = "Close"
//	    command = "close"
type Layout struct {
	Screen  ScreenConfig   `toml:"screen"`
	Windows []WindowConfig `toml:"window"`
}

// ScreenConfig holds the RunConfig fields plus the debug switch.
type ScreenConfig struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Scale   int    `toml:"scale"`
	TPS     int    `toml:"tps"`
	ShowFPS bool   `toml:"show_fps"`
	Debug   bool   `toml:"debug"`
}

// WindowConfig places one window. The first window in the file is the
// front one.
type WindowConfig struct {
	Title  string       `toml:"title"`
	X      int          `toml:"x"`
	Y      int          `toml:"y"`
	Width  int          `toml:"width"`
	Height int          `toml:"height"`
	Menus  []MenuConfig `toml:"menu"`
}

// MenuConfig is one top-bar button and its fold-out entries.
type MenuConfig struct {
	Label   string        `toml:"label"`
	Entries []EntryConfig `toml:"entry"`
}

// EntryConfig is one fold-out row. Command is passed to the onCommand
// callback of Build; CommandClose is handled directly.
type EntryConfig struct {
	Label   string `toml:"label"`
	Command string `toml:"command"`
}

// LoadLayout parses and validates a TOML layout. Unknown keys are rejected.
func LoadLayout(data []byte) (*Layout, error) {
	var l Layout
	md, err := toml.Decode(string(data), &l)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidLayout, undecoded[0].String())
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadLayoutFile reads and parses a TOML layout file.
func LoadLayoutFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	l, err := LoadLayout(data)
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	return l, nil
}

// RunConfig returns the driver settings of the [screen] table with defaults
// applied.
func (l *Layout) RunConfig() RunConfig {
	return RunConfig{
		Title:   l.Screen.Title,
		Width:   l.Screen.Width,
		Height:  l.Screen.Height,
		Scale:   l.Screen.Scale,
		TPS:     l.Screen.TPS,
		ShowFPS: l.Screen.ShowFPS,
	}.withDefaults()
}

// Validate checks that every window has a positive size, is wide enough
// for its title in DefaultFont, fits on the screen, and that every menu and
// entry is labelled.
func (l *Layout) Validate() error {
	return l.ValidateFont(nil)
}

// ValidateFont is Validate with the font later passed to Build. A nil font
// uses DefaultFont.
func (l *Layout) ValidateFont(font FontProvider) error {
	if l.Screen.Width < 0 || l.Screen.Height < 0 || l.Screen.Scale < 0 || l.Screen.TPS < 0 {
		return fmt.Errorf("%w: negative screen setting", ErrInvalidLayout)
	}
	screen := l.RunConfig()
	for i, w := range l.Windows {
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("%w: window %d (%q): size %dx%d must be positive",
				ErrInvalidLayout, i, w.Title, w.Width, w.Height)
		}
		if w.Height < WindowChromeHeight {
			return fmt.Errorf("%w: window %d (%q): height %d is below the title bar height %d",
				ErrInvalidLayout, i, w.Title, w.Height, WindowChromeHeight)
		}
		minW := NewText(w.Title, font, ColorBlack, ColorWhite).MinBounds().Width + 2*chromeSide
		if w.Width < minW {
			return fmt.Errorf("%w: window %d (%q): width %d is below the title bar width %d",
				ErrInvalidLayout, i, w.Title, w.Width, minW)
		}
		if w.X < 0 || w.Y < 0 || w.X+w.Width > screen.Width || w.Y+w.Height > screen.Height {
			return fmt.Errorf("%w: window %d (%q): rectangle (%d,%d %dx%d) is off the %dx%d screen",
				ErrInvalidLayout, i, w.Title, w.X, w.Y, w.Width, w.Height, screen.Width, screen.Height)
		}
		for j, m := range w.Menus {
			if m.Label == "" {
				return fmt.Errorf("%w: window %d (%q): menu %d has no label", ErrInvalidLayout, i, w.Title, j)
			}
			for k, e := range m.Entries {
				if e.Label == "" {
					return fmt.Errorf("%w: window %d (%q): menu %q entry %d has no label",
						ErrInvalidLayout, i, w.Title, m.Label, k)
				}
			}
		}
	}
	return nil
}

// Build creates a desktop holding the layout's windows. Menu entries call
// onCommand with the window title and the entry command; a nil onCommand
// ignores every command except CommandClose. A nil font uses DefaultFont.
// Layouts built with a custom font should be checked with ValidateFont.
func (l *Layout) Build(font FontProvider, onCommand func(window, command string)) *Desktop {
	cfg := l.RunConfig()
	d := NewDesktop(cfg.Width, cfg.Height)
	d.SetDebugMode(l.Screen.Debug)

	for _, wc := range l.Windows {
		w := NewWindowWithFont(wc.Title, wc.Width, wc.Height, wc.X, wc.Y, font)
		buttons := make([]*TopBarButton, 0, len(wc.Menus))
		for _, mc := range wc.Menus {
			entries := make([]MenuEntry, len(mc.Entries))
			for k, ec := range mc.Entries {
				entries[k] = MenuEntry{Label: ec.Label, Action: commandAction(w, ec.Command, onCommand)}
			}
			buttons = append(buttons, NewTopBarButton(mc.Label, entries, font))
		}
		w.RegisterTopBar(NewTopBar(buttons))
		d.RegisterWindow(w)
	}
	return d
}

func commandAction(w *Window, command string, onCommand func(window, command string)) func() {
	return func() {
		if command == CommandClose {
			w.Close()
			return
		}
		if onCommand != nil {
			onCommand(w.Title(), command)
		}
	}
}
