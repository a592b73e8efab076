package modesto

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testLayout = `
[screen]
title = "TEST"
width = 720
height = 480

[[window]]
title = " Notes "
x = 40
y = 40
width = 360
height = 220

  [[window.menu]]
  label = "File"

    [[window.menu.entry]]
    label = "New"
    command = "new"

    [[window.menu.entry]]
    label = "Close"
    command = "close"

[[window]]
title = " Clock "
x = 320
y = 180
width = 300
height = 200
`

func TestLoadLayout(t *testing.T) {
	l, err := LoadLayout([]byte(testLayout))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Screen.Title != "TEST" || l.Screen.Width != 720 || l.Screen.Height != 480 {
		t.Errorf("screen = %+v", l.Screen)
	}
	if len(l.Windows) != 2 {
		t.Fatalf("windows = %d, want 2", len(l.Windows))
	}
	notes := l.Windows[0]
	if notes.Title != " Notes " || notes.X != 40 || notes.Width != 360 {
		t.Errorf("window 0 = %+v", notes)
	}
	if len(notes.Menus) != 1 || len(notes.Menus[0].Entries) != 2 {
		t.Fatalf("menus = %+v", notes.Menus)
	}
	if e := notes.Menus[0].Entries[1]; e.Label != "Close" || e.Command != CommandClose {
		t.Errorf("entry = %+v", e)
	}
}

func TestLoadLayoutErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"syntax", "[screen\nwidth = 1", false},
		{"unknown key", "[screen]\ncolour = 1", true},
		{"negative screen", "[screen]\nwidth = -1", true},
		{"zero size", "[[window]]\ntitle = \"a\"\nwidth = 0\nheight = 50", true},
		{"short window", "[[window]]\ntitle = \"a\"\nwidth = 50\nheight = 10", true},
		{"narrower than title", "[[window]]\ntitle = \" Notes \"\nx = 40\ny = 40\nwidth = 40\nheight = 50", true},
		{"off screen", "[[window]]\ntitle = \"a\"\nx = 700\nwidth = 50\nheight = 50", true},
		{"unlabelled menu", "[[window]]\nwidth = 50\nheight = 50\n[[window.menu]]\nlabel = \"\"", true},
		{"unlabelled entry", "[[window]]\nwidth = 50\nheight = 50\n[[window.menu]]\nlabel = \"m\"\n[[window.menu.entry]]\ncommand = \"x\"", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLayout([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidLayout); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidLayout) = %v, want %v (%v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLayoutRunConfigDefaults(t *testing.T) {
	l, err := LoadLayout([]byte("[screen]\nshow_fps = true"))
	if err != nil {
		t.Fatal(err)
	}
	cfg := l.RunConfig()
	want := RunConfig{Title: DefaultTitle, Width: DefaultWidth, Height: DefaultHeight, Scale: DefaultScale, TPS: DefaultTPS, ShowFPS: true}
	if cfg != want {
		t.Errorf("RunConfig = %+v, want %+v", cfg, want)
	}
}

func TestLoadLayoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(testLayout), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := LoadLayoutFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.Windows) != 2 {
		t.Errorf("windows = %d, want 2", len(l.Windows))
	}

	_, err = LoadLayoutFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "read layout") {
		t.Errorf("missing file error = %v", err)
	}
}

func TestLayoutBuild(t *testing.T) {
	l, err := LoadLayout([]byte(testLayout))
	if err != nil {
		t.Fatal(err)
	}
	var commands []string
	d := l.Build(nil, func(window, command string) {
		commands = append(commands, window+":"+command)
	})

	ws := d.Windows()
	if len(ws) != 2 || ws[0].Title() != " Notes " || ws[1].Title() != " Clock " {
		t.Fatalf("windows = %v", ws)
	}
	if p := ws[1].Position(); p != (Position{320, 180}) {
		t.Errorf("clock position = %+v", p)
	}
	if b := ws[0].MinBounds(); b != (Bounds{360, 220}) {
		t.Errorf("notes size = %+v", b)
	}
	if n := len(ws[1].TopBar().Buttons()); n != 0 {
		t.Errorf("clock top bar buttons = %d, want 0", n)
	}

	bar := ws[0].TopBar()
	file := bar.buttonRects()[0]
	menu := bar.Buttons()[0].Menu()
	rh := menu.rowHeight()

	openFile := func() {
		tick(d, file.X+1, file.Y+1, LMBDown)
		tick(d, file.X+1, file.Y+1, LMBUp)
		if !bar.Buttons()[0].Opened() {
			t.Fatal("File menu did not open")
		}
	}
	pick := func(row int) {
		y := TopBarHeight + row*rh + rh/2
		tick(d, file.X+2, y, LMBDown)
		tick(d, file.X+2, y, LMBUp)
	}

	openFile()
	pick(0)
	if len(commands) != 1 || commands[0] != " Notes :new" {
		t.Errorf("commands = %v", commands)
	}
	if bar.Buttons()[0].Opened() {
		t.Error("menu should close after activation")
	}

	openFile()
	pick(1)
	if len(commands) != 1 {
		t.Errorf("close should not reach onCommand: %v", commands)
	}
	if len(d.Windows()) != 1 || d.Focused().Title() != " Clock " {
		t.Errorf("after close windows = %d, focused = %q", len(d.Windows()), d.Focused().Title())
	}
}

func TestValidateFontTitleWidth(t *testing.T) {
	l := &Layout{Windows: []WindowConfig{{Title: "ab", Y: 30, Width: 53, Height: 50}}}
	// testFont: "ab" is 15 wide, plus 19 on each side.
	if err := l.ValidateFont(testFont()); err != nil {
		t.Errorf("53px window should fit \"ab\": %v", err)
	}
	l.Windows[0].Width = 52
	if err := l.ValidateFont(testFont()); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("52px window error = %v, want ErrInvalidLayout", err)
	}

	// A validated layout renders its title bar without overflow.
	l.Windows[0].Width = 53
	d := l.Build(testFont(), nil)
	frame := d.Draw(DefaultWidth, DefaultHeight)
	if got := frame.PixelAt(0, 30); got != PixelBlack {
		t.Errorf("chrome corner = %v, want black border", got)
	}
}
