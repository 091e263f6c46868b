package app

import (
	"errors"
	"testing"

	"github.com/jesseduffield/gocui"

	"github.com/abdullathedruid/shellpane/internal/config"
	"github.com/abdullathedruid/shellpane/internal/input"
	"github.com/abdullathedruid/shellpane/internal/keys"
	"github.com/abdullathedruid/shellpane/internal/screen"
)

type recordingSink struct {
	events []keys.Event
	err    error
}

func (s *recordingSink) HandleKey(ev keys.Event) error {
	s.events = append(s.events, ev)
	return s.err
}

func TestBindingsFrom(t *testing.T) {
	b, err := bindingsFrom(config.DefaultKeyBindings())
	if err != nil {
		t.Fatalf("bindingsFrom() error = %v", err)
	}
	if b != input.DefaultBindings() {
		t.Errorf("bindingsFrom(defaults) = %+v, want %+v", b, input.DefaultBindings())
	}

	b, err = bindingsFrom(config.KeyBindings{Escape: "f12", Quit: "X", Resume: "enter"})
	if err != nil {
		t.Fatalf("bindingsFrom() error = %v", err)
	}
	want := input.Bindings{
		Escape: keys.Event{Key: keys.KeyF12},
		Quit:   keys.Rune('X'),
		Resume: keys.Event{Key: keys.KeyEnter},
	}
	if b != want {
		t.Errorf("bindingsFrom(custom) = %+v, want %+v", b, want)
	}

	if _, err := bindingsFrom(config.KeyBindings{Escape: "nope", Quit: "q", Resume: "i"}); err == nil {
		t.Error("bindingsFrom() expected error for invalid key")
	}
}

func TestThemeFrom(t *testing.T) {
	theme := themeFrom(config.Theme{
		Palette:       map[string]string{"blue": "cyan", "red": "default", "teal": "red"},
		FrameTerminal: "magenta",
	})

	tests := []struct {
		from screen.Color
		want screen.Color
		ok   bool
	}{
		{screen.ColorBlue, screen.ColorCyan, true},
		{screen.ColorRed, screen.ColorDefault, true},
		{screen.ColorGreen, screen.ColorDefault, false},
	}
	for _, tt := range tests {
		got, ok := theme.Palette[tt.from]
		if ok != tt.ok || got != tt.want {
			t.Errorf("Palette[%v] = %v, %v, want %v, %v", tt.from, got, ok, tt.want, tt.ok)
		}
	}
	if len(theme.Palette) != 2 {
		t.Errorf("Palette has %d entries, want 2", len(theme.Palette))
	}
	if theme.FrameTerminal != gocui.ColorMagenta {
		t.Errorf("FrameTerminal = %v, want magenta", theme.FrameTerminal)
	}
	if theme.FrameCommand != gocui.ColorBlue {
		t.Errorf("FrameCommand = %v, want default blue", theme.FrameCommand)
	}
}

func TestDispatch(t *testing.T) {
	h := input.NewHandler(input.DefaultBindings())
	sink := &recordingSink{}
	var warnings int
	warn := func(string, ...any) { warnings++ }

	steps := []struct {
		ev       keys.Event
		wantErr  error
		wantMode input.Mode
	}{
		{keys.Rune('q'), nil, input.ModeTerminal},
		{keys.Ctrl('c'), nil, input.ModeTerminal},
		{keys.Ctrl('q'), nil, input.ModeCommand},
		{keys.Rune('x'), nil, input.ModeCommand},
		{keys.Rune('i'), nil, input.ModeTerminal},
		{keys.Event{Key: keys.KeyArrowUp}, nil, input.ModeTerminal},
		{keys.Ctrl('q'), nil, input.ModeCommand},
		{keys.Rune('q'), gocui.ErrQuit, input.ModeCommand},
	}

	for i, s := range steps {
		err := dispatch(h, sink, s.ev, warn)
		if !errors.Is(err, s.wantErr) {
			t.Errorf("step %d: dispatch(%+v) error = %v, want %v", i, s.ev, err, s.wantErr)
		}
		if h.Mode() != s.wantMode {
			t.Errorf("step %d: mode = %v, want %v", i, h.Mode(), s.wantMode)
		}
	}

	want := []keys.Event{keys.Rune('q'), keys.Ctrl('c'), {Key: keys.KeyArrowUp}}
	if len(sink.events) != len(want) {
		t.Fatalf("forwarded %d events, want %d: %+v", len(sink.events), len(want), sink.events)
	}
	for i := range want {
		if sink.events[i] != want[i] {
			t.Errorf("forwarded[%d] = %+v, want %+v", i, sink.events[i], want[i])
		}
	}
	if warnings != 0 {
		t.Errorf("warnings = %d, want 0", warnings)
	}
}

func TestDispatch_WriteErrorIsReported(t *testing.T) {
	h := input.NewHandler(input.DefaultBindings())
	sink := &recordingSink{err: errors.New("closed")}
	var msgs []string
	warn := func(msg string, _ ...any) { msgs = append(msgs, msg) }

	if err := dispatch(h, sink, keys.Rune('a'), warn); err != nil {
		t.Errorf("dispatch() error = %v, want nil", err)
	}
	if len(msgs) != 1 || msgs[0] != "write to shell failed" {
		t.Errorf("warnings = %q", msgs)
	}
}
