package ui

import (
	"strings"
	"testing"

	"github.com/jesseduffield/gocui"
	"github.com/mattn/go-runewidth"

	"github.com/abdullathedruid/shellpane/internal/input"
	"github.com/abdullathedruid/shellpane/internal/keys"
	"github.com/abdullathedruid/shellpane/internal/screen"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"hi", 2, "hi"},
		{"hello", 3, "hel"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"hi", 5, "hi   "},
		{"hello", 5, "hello"},
		{"toolong", 4, "tool"},
		{"世界", 6, "世界  "},
	}

	for _, tt := range tests {
		if got := PadRight(tt.input, tt.width); got != tt.want {
			t.Errorf("PadRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestRenderStatusLine(t *testing.T) {
	info := StatusInfo{
		Mode:    input.ModeTerminal,
		Process: "vim",
		Rows:    24,
		Cols:    80,
		Help:    "ctrl+q:command",
		Version: "v1.0.0",
	}
	line := RenderStatusLine(info, 80)

	if runewidth.StringWidth(line) != 80 {
		t.Errorf("status width = %d, want 80", runewidth.StringWidth(line))
	}
	for _, want := range []string{"TERMINAL", "vim", "80x24", "ctrl+q:command", "v1.0.0"} {
		if !strings.Contains(line, want) {
			t.Errorf("status line %q missing %q", line, want)
		}
	}

	info.Exited = true
	info.Mode = input.ModeCommand
	line = RenderStatusLine(info, 80)
	if !strings.Contains(line, "COMMAND") || !strings.Contains(line, "exited") {
		t.Errorf("status line %q should show command mode and exit", line)
	}

	if narrow := RenderStatusLine(info, 10); runewidth.StringWidth(narrow) != 10 {
		t.Errorf("narrow status width = %d, want 10", runewidth.StringWidth(narrow))
	}
}

func TestHelpFor(t *testing.T) {
	if got := HelpFor(input.ModeTerminal, "ctrl+q", "q", "i"); got != "ctrl+q:command" {
		t.Errorf("terminal help = %q", got)
	}
	if got := HelpFor(input.ModeCommand, "ctrl+q", "q", "i"); got != "q:quit i:resume" {
		t.Errorf("command help = %q", got)
	}
}

func TestPaneTitle(t *testing.T) {
	scr := screen.New(1, 1)
	if got := PaneTitle(scr.Snapshot(), "bash"); got != "bash" {
		t.Errorf("PaneTitle without title = %q, want bash", got)
	}
	if got := PaneTitle(scr.Snapshot(), ""); got != "shell" {
		t.Errorf("PaneTitle fallback = %q, want shell", got)
	}
	scr.SetTitle("user@host: ~")
	if got := PaneTitle(scr.Snapshot(), "bash"); got != "user@host: ~" {
		t.Errorf("PaneTitle with title = %q", got)
	}
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		key  gocui.Key
		ch   rune
		mod  gocui.Modifier
		want keys.Event
	}{
		{"rune", 0, 'a', gocui.ModNone, keys.Rune('a')},
		{"alt rune", 0, 'x', gocui.ModAlt, keys.Event{Key: keys.KeyRune, Rune: 'x', Mod: keys.ModAlt}},
		{"space", gocui.KeySpace, 0, gocui.ModNone, keys.Rune(' ')},
		{"enter", gocui.KeyEnter, 0, gocui.ModNone, keys.Event{Key: keys.KeyEnter}},
		{"tab", gocui.KeyTab, 0, gocui.ModNone, keys.Event{Key: keys.KeyTab}},
		{"backspace2", gocui.KeyBackspace2, 0, gocui.ModNone, keys.Event{Key: keys.KeyBackspace}},
		{"escape", gocui.KeyEsc, 0, gocui.ModNone, keys.Event{Key: keys.KeyEscape}},
		{"arrow", gocui.KeyArrowUp, 0, gocui.ModNone, keys.Event{Key: keys.KeyArrowUp}},
		{"f12", gocui.KeyF12, 0, gocui.ModNone, keys.Event{Key: keys.KeyF12}},
		{"ctrl c", gocui.KeyCtrlC, 0, gocui.ModNone, keys.Ctrl('c')},
		{"ctrl q", gocui.KeyCtrlQ, 0, gocui.ModNone, keys.Ctrl('q')},
		{"ctrl backslash", gocui.KeyCtrlBackslash, 0, gocui.ModNone, keys.Ctrl('\\')},
		{"ctrl space", gocui.KeyCtrlSpace, 0, gocui.ModNone, keys.Ctrl(' ')},
		{"ctrl right bracket", gocui.KeyCtrlRsqBracket, 0, gocui.ModNone, keys.Ctrl(']')},
		{"ctrl caret", gocui.KeyCtrl6, 0, gocui.ModNone, keys.Ctrl('^')},
		{"ctrl underscore", gocui.KeyCtrlUnderscore, 0, gocui.ModNone, keys.Ctrl('_')},
	}

	for _, tt := range tests {
		if got := KeyEvent(tt.key, tt.ch, tt.mod); got != tt.want {
			t.Errorf("%s: KeyEvent() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestKeyEvent_CtrlPunctuationReachesShell(t *testing.T) {
	tests := []struct {
		key  gocui.Key
		want string
	}{
		{gocui.KeyCtrlSpace, "\x00"},
		{gocui.KeyCtrlRsqBracket, "\x1d"},
		{gocui.KeyCtrl6, "\x1e"},
		{gocui.KeyCtrlUnderscore, "\x1f"},
	}

	for _, tt := range tests {
		out, ok := keys.Translate(KeyEvent(tt.key, 0, gocui.ModNone))
		if !ok || string(out) != tt.want {
			t.Errorf("KeyEvent(%v) translated to %q, %v, want %q", tt.key, out, ok, tt.want)
		}
	}
}

func TestKeyEvent_CtrlCReachesShellAsETX(t *testing.T) {
	out, ok := keys.Translate(KeyEvent(gocui.KeyCtrlC, 0, gocui.ModNone))
	if !ok || string(out) != "\x03" {
		t.Errorf("ctrl+c translated to %q, %v, want \\x03", out, ok)
	}
}
