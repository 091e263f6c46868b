// Package input provides modal input handling for the shell pane.
package input

// Mode represents the current input mode.
type Mode int

const (
	// ModeTerminal forwards all input to the shell.
	ModeTerminal Mode = iota
	// ModeCommand interprets keys as application commands.
	ModeCommand
)

// String returns the human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeTerminal:
		return "TERMINAL"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal returns true if the mode forwards input to the shell.
func (m Mode) IsTerminal() bool {
	return m == ModeTerminal
}

// IsCommand returns true if the mode is command mode.
func (m Mode) IsCommand() bool {
	return m == ModeCommand
}
