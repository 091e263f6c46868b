package input

import (
	"sync"

	"github.com/abdullathedruid/shellpane/internal/keys"
)

// Action is what the caller should do with a key after Dispatch.
type Action int

const (
	// ActionNone means the key was consumed without effect.
	ActionNone Action = iota
	// ActionForward means the key should be sent to the shell.
	ActionForward
	// ActionEnterCommand means the handler switched to command mode.
	ActionEnterCommand
	// ActionEnterTerminal means the handler switched back to terminal mode.
	ActionEnterTerminal
	// ActionQuit means the application should exit.
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionForward:
		return "forward"
	case ActionEnterCommand:
		return "enter-command"
	case ActionEnterTerminal:
		return "enter-terminal"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Bindings are the keys the handler reacts to.
type Bindings struct {
	// Escape switches between terminal and command mode.
	Escape keys.Event
	// Quit exits from command mode.
	Quit keys.Event
	// Resume returns from command mode to terminal mode.
	Resume keys.Event
}

// DefaultBindings returns ctrl+q to escape, q to quit and i to resume.
func DefaultBindings() Bindings {
	return Bindings{
		Escape: keys.Ctrl('q'),
		Quit:   keys.Rune('q'),
		Resume: keys.Rune('i'),
	}
}

// Handler manages the current mode and maps keys to actions.
type Handler struct {
	mode     Mode
	bindings Bindings
	mu       sync.RWMutex
}

// NewHandler creates a new input handler in terminal mode.
func NewHandler(b Bindings) *Handler {
	return &Handler{
		mode:     ModeTerminal,
		bindings: b,
	}
}

// Mode returns the current input mode.
func (h *Handler) Mode() Mode {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.mode
}

// SetMode changes the current input mode.
func (h *Handler) SetMode(mode Mode) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.mode = mode
}

// EnterTerminalMode switches to terminal mode.
func (h *Handler) EnterTerminalMode() {
	h.SetMode(ModeTerminal)
}

// EnterCommandMode switches to command mode.
func (h *Handler) EnterCommandMode() {
	h.SetMode(ModeCommand)
}

// Bindings returns the configured key bindings.
func (h *Handler) Bindings() Bindings {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.bindings
}

// Dispatch decides what to do with ev in the current mode, switching modes
// as a side effect.
func (h *Handler) Dispatch(ev keys.Event) Action {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.mode == ModeTerminal {
		if ev == h.bindings.Escape {
			h.mode = ModeCommand
			return ActionEnterCommand
		}
		return ActionForward
	}

	switch {
	case ev == h.bindings.Quit:
		return ActionQuit
	case ev == h.bindings.Resume, ev == h.bindings.Escape, ev.Key == keys.KeyEnter, ev.Key == keys.KeyEscape:
		h.mode = ModeTerminal
		return ActionEnterTerminal
	}
	return ActionNone
}
