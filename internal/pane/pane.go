// Package pane hosts an interactive shell: a pty session, the poller that
// feeds its output into a screen, and the latest snapshot for rendering.
package pane

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/abdullathedruid/shellpane/internal/keys"
	"github.com/abdullathedruid/shellpane/internal/poller"
	"github.com/abdullathedruid/shellpane/internal/screen"
	"github.com/abdullathedruid/shellpane/internal/terminal"
)

// DefaultViewName is the gocui view name used for the pane.
const DefaultViewName = "pane"

// Options configures Start.
type Options struct {
	Terminal   terminal.Options
	BufferSize int
	Logger     *slog.Logger
	ViewName   string
}

// Pane is a running shell and its screen.
type Pane struct {
	ViewName string

	session *terminal.Session
	poller  *poller.Poller
	notify  func()
	onExit  func()
	log     *slog.Logger

	mu     sync.Mutex
	snap   screen.Snapshot
	exited atomic.Bool
}

// Start opens the shell and begins pumping its output. notify is called
// from the reader goroutine after each new snapshot; onExit is called once
// when the shell's output ends. Either may be nil.
func Start(opts Options, notify, onExit func()) (*Pane, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	viewName := opts.ViewName
	if viewName == "" {
		viewName = DefaultViewName
	}

	sess, err := terminal.Open(opts.Terminal)
	if err != nil {
		return nil, err
	}

	rows, cols := sess.Size()
	scr := screen.New(rows, cols)
	p := &Pane{
		ViewName: viewName,
		session:  sess,
		notify:   notify,
		onExit:   onExit,
		log:      log.With("pid", sess.Pid()),
		snap:     scr.Snapshot(),
	}
	p.poller = poller.New(sess, scr, p,
		poller.WithBufferSize(opts.BufferSize),
		poller.WithLogger(p.log),
	)
	if err := p.poller.Start(); err != nil {
		closeLogged(p.log, sess, "session")
		return nil, err
	}

	p.log.Info("shell started", "rows", rows, "cols", cols)
	return p, nil
}

// OnSnapshot implements poller.Consumer.
func (p *Pane) OnSnapshot(s screen.Snapshot) {
	p.mu.Lock()
	p.snap = s
	p.mu.Unlock()

	if p.notify != nil {
		p.notify()
	}
}

// OnTerminated implements poller.Consumer.
func (p *Pane) OnTerminated() {
	p.exited.Store(true)
	p.log.Info("shell output ended")
	if p.onExit != nil {
		p.onExit()
	}
}

// Snapshot returns the most recently published screen state.
func (p *Pane) Snapshot() screen.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

// HandleKey translates ev and sends it to the shell. Events that produce no
// output are ignored.
func (p *Pane) HandleKey(ev keys.Event) error {
	out, ok := keys.Translate(ev)
	if !ok {
		return nil
	}
	_, err := p.session.Write(out)
	return err
}

// Exited reports whether the shell's output has ended.
func (p *Pane) Exited() bool {
	return p.exited.Load()
}

// Pid returns the shell's process id.
func (p *Pane) Pid() int {
	return p.session.Pid()
}

// Size returns the screen size in rows and columns.
func (p *Pane) Size() (rows, cols int) {
	s := p.Snapshot()
	return s.Rows(), s.Cols()
}

// Close stops the shell and waits for the poller to finish.
func (p *Pane) Close() error {
	err := p.session.Close()
	p.poller.Wait()
	return err
}

// closeLogged closes c on an error path where only the first error is
// returned to the caller.
func closeLogged(log *slog.Logger, c io.Closer, what string) {
	if err := c.Close(); err != nil {
		log.Debug(what+" close", "error", err)
	}
}
