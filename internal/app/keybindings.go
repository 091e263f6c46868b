package app

import (
	"github.com/go-errors/errors"
	"github.com/jesseduffield/gocui"

	"github.com/abdullathedruid/shellpane/internal/config"
	"github.com/abdullathedruid/shellpane/internal/input"
	"github.com/abdullathedruid/shellpane/internal/keys"
	"github.com/abdullathedruid/shellpane/internal/ui"
)

// keySink receives keys forwarded to the shell.
type keySink interface {
	HandleKey(ev keys.Event) error
}

// setupKeybindings configures all keyboard handlers. The mode keys are bound
// on the pane view so they win over its editor; everything else reaches the
// editor and from there the shell.
func (a *App) setupKeybindings() error {
	g := a.gui
	bound := []string{a.config.Keys.Escape, a.config.Keys.Quit, a.config.Keys.Resume}

	for _, s := range bound {
		key, err := config.ParseKey(s)
		if err != nil {
			return err
		}
		ev := eventFor(key)
		if err := g.SetKeybinding(a.pane.ViewName, key.Value, key.Mod, func(g *gocui.Gui, v *gocui.View) error {
			return a.handleKey(ev)
		}); err != nil {
			return err
		}
	}

	return nil
}

// terminalEditor is the pane view's editor. It sees every key without a
// view binding.
func (a *App) terminalEditor(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) bool {
	ev := ui.KeyEvent(key, ch, mod)
	if err := a.handleKey(ev); errors.Is(err, gocui.ErrQuit) {
		a.gui.Update(func(g *gocui.Gui) error {
			return gocui.ErrQuit
		})
	}
	return true
}

func (a *App) handleKey(ev keys.Event) error {
	return dispatch(a.input, a.pane, ev, a.log.Warn)
}

// dispatch routes ev through the mode handler. Forwarded keys go to sink;
// write failures are reported through warn rather than ending the loop.
func dispatch(h *input.Handler, sink keySink, ev keys.Event, warn func(msg string, args ...any)) error {
	switch h.Dispatch(ev) {
	case input.ActionForward:
		if err := sink.HandleKey(ev); err != nil {
			warn("write to shell failed", "key", ev.Key.String(), "error", err)
		}
	case input.ActionQuit:
		return gocui.ErrQuit
	}
	return nil
}
