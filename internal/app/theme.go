package app

import (
	"github.com/abdullathedruid/shellpane/internal/config"
	"github.com/abdullathedruid/shellpane/internal/input"
	"github.com/abdullathedruid/shellpane/internal/keys"
	"github.com/abdullathedruid/shellpane/internal/screen"
	"github.com/abdullathedruid/shellpane/internal/ui"
)

// themeFrom converts validated theme config into a render theme. Unknown
// color names keep the default.
func themeFrom(t config.Theme) ui.Theme {
	theme := ui.DefaultTheme()
	for from, to := range t.Palette {
		src, ok := screen.ParseColor(from)
		if !ok {
			continue
		}
		if dst, ok := screen.ParseColor(to); ok {
			theme.Palette[src] = dst
		}
	}
	if c, ok := screen.ParseColor(t.FrameTerminal); ok {
		theme.FrameTerminal = ui.GocuiColor(c)
	}
	if c, ok := screen.ParseColor(t.FrameCommand); ok {
		theme.FrameCommand = ui.GocuiColor(c)
	}
	return theme
}

// bindingsFrom converts key config into mode handler bindings.
func bindingsFrom(k config.KeyBindings) (input.Bindings, error) {
	var b input.Bindings
	for _, kb := range []struct {
		s   string
		dst *keys.Event
	}{
		{k.Escape, &b.Escape},
		{k.Quit, &b.Quit},
		{k.Resume, &b.Resume},
	} {
		key, err := config.ParseKey(kb.s)
		if err != nil {
			return input.Bindings{}, err
		}
		*kb.dst = eventFor(key)
	}
	return b, nil
}

// eventFor returns the key event gocui reports for a parsed config key.
func eventFor(key config.Key) keys.Event {
	return ui.KeyEvent(key.GocuiKey(), key.Rune(), key.Mod)
}
