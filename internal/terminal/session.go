// Package terminal runs a shell on a pseudo-terminal.
package terminal

import (
	"fmt"
	"io"
	"maps"
	"os"
	"os/exec"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/creack/pty"
	"github.com/go-errors/errors"
)

const (
	DefaultShell = "/bin/bash"
	DefaultRows  = 24
	DefaultCols  = 80
)

// DefaultArgs starts the default shell interactively so line editing is on.
var DefaultArgs = []string{"-i"}

// Options configures Open.
type Options struct {
	// Shell is a path or a name looked up in PATH. Empty means DefaultShell
	// with DefaultArgs.
	Shell string
	Args  []string
	Rows  int
	Cols  int
	// Env is laid over the inherited environment and DefaultEnv.
	Env map[string]string
	Dir string
}

// Session is a running shell attached to the master side of a pty.
type Session struct {
	cmd  *exec.Cmd
	pty  *os.File
	env  map[string]string
	rows int
	cols int

	writeMu   sync.Mutex
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
	waitOnce  sync.Once
	waitErr   error
}

// DefaultEnv returns the variables every session sets for its child.
func DefaultEnv(rows, cols int) map[string]string {
	return map[string]string{
		"TERM":    "linux",
		"LANG":    "en_US.UTF-8",
		"LINES":   strconv.Itoa(rows),
		"COLUMNS": strconv.Itoa(cols),
	}
}

// Open resolves the shell, allocates a pty of the requested size and starts
// the shell on it.
func Open(opts Options) (*Session, error) {
	if opts.Shell == "" {
		opts.Shell = DefaultShell
		if opts.Args == nil {
			opts.Args = DefaultArgs
		}
	}
	if opts.Rows <= 0 {
		opts.Rows = DefaultRows
	}
	if opts.Cols <= 0 {
		opts.Cols = DefaultCols
	}

	path, err := exec.LookPath(opts.Shell)
	if err != nil {
		return nil, errors.WrapPrefix(ErrShellNotFound, opts.Shell, 0)
	}

	env := DefaultEnv(opts.Rows, opts.Cols)
	maps.Copy(env, opts.Env)

	cmd := exec.Command(path, opts.Args...)
	cmd.Env = mergeEnv(os.Environ(), env)
	cmd.Dir = opts.Dir

	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(opts.Rows),
		Cols: uint16(opts.Cols),
	})
	if err != nil {
		return nil, errors.WrapPrefix(ErrPTYAllocation, fmt.Sprintf("start %s: %v", path, err), 0)
	}

	return &Session{
		cmd:  cmd,
		pty:  f,
		env:  env,
		rows: opts.Rows,
		cols: opts.Cols,
	}, nil
}

// mergeEnv overlays vars on base, dropping base entries whose names are
// overridden. Overrides are appended in name order.
func mergeEnv(base []string, vars map[string]string) []string {
	out := make([]string, 0, len(base)+len(vars))
	for _, kv := range base {
		name, _, _ := strings.Cut(kv, "=")
		if _, ok := vars[name]; ok {
			continue
		}
		out = append(out, kv)
	}
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		out = append(out, name+"="+vars[name])
	}
	return out
}

// Read reads shell output. Once the shell has exited or the session is
// closed it returns io.EOF.
func (s *Session) Read(p []byte) (int, error) {
	if s.closed.Load() {
		return 0, io.EOF
	}
	n, err := s.pty.Read(p)
	if err == nil || err == io.EOF {
		return n, err
	}
	if s.closed.Load() {
		return n, io.EOF
	}
	// Linux reports EIO on the master once the slave side has no open handles.
	if pe, ok := err.(*os.PathError); ok && (pe.Err == syscall.EIO || pe.Err == os.ErrClosed) {
		return n, io.EOF
	}
	return n, err
}

// Write sends input to the shell.
func (s *Session) Write(p []byte) (int, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.closed.Load() {
		return 0, ErrSessionClosed
	}
	return s.pty.Write(p)
}

// Close closes the pty, kills the shell if it is still running and reaps
// it. It is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.closeErr = s.pty.Close()
		if s.cmd.Process != nil {
			_ = s.cmd.Process.Kill()
		}
		_ = s.Wait()
	})
	return s.closeErr
}

// Wait blocks until the shell exits and returns its exit error. The result
// is cached so Wait can be called any number of times.
func (s *Session) Wait() error {
	s.waitOnce.Do(func() {
		s.waitErr = s.cmd.Wait()
	})
	return s.waitErr
}

// Pid returns the shell's process id.
func (s *Session) Pid() int {
	if s.cmd.Process == nil {
		return 0
	}
	return s.cmd.Process.Pid
}

// Env returns the variables set on top of the inherited environment.
func (s *Session) Env() map[string]string {
	return maps.Clone(s.env)
}

// Size returns the pty size in rows and columns.
func (s *Session) Size() (rows, cols int) {
	if !s.closed.Load() {
		if ws, err := pty.GetsizeFull(s.pty); err == nil {
			return int(ws.Rows), int(ws.Cols)
		}
	}
	return s.rows, s.cols
}
