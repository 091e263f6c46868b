package terminal

import "github.com/go-errors/errors"

var (
	// ErrShellNotFound is returned by Open when the shell binary cannot be resolved.
	ErrShellNotFound = errors.New("shell not found")
	// ErrPTYAllocation is returned by Open when the pseudo-terminal or the
	// child process cannot be started.
	ErrPTYAllocation = errors.New("pty allocation failed")
	// ErrSessionClosed is returned by Write after Close.
	ErrSessionClosed = errors.New("session closed")
)
