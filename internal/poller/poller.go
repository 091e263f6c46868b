// Package poller pumps output from a shell into a screen and publishes
// snapshots of the result.
//
// A Poller owns one reader goroutine. It is the only code that mutates the
// Screen; consumers only ever receive immutable Snapshots.
package poller

import (
	"io"
	"log/slog"
	"sync"

	"github.com/go-errors/errors"

	"github.com/abdullathedruid/shellpane/internal/screen"
	"github.com/abdullathedruid/shellpane/internal/vt"
)

// DefaultBufferSize is the read chunk size.
const DefaultBufferSize = 4096

// ErrAlreadyStarted is returned by Start on a poller that is not idle.
var ErrAlreadyStarted = errors.New("poller already started")

// State is the lifecycle state of a Poller.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Consumer receives the poller's output. Both methods are called from the
// poller goroutine.
type Consumer interface {
	// OnSnapshot is called after every chunk of output has been applied.
	OnSnapshot(screen.Snapshot)
	// OnTerminated is called exactly once when the source is exhausted.
	// No OnSnapshot call follows it.
	OnTerminated()
}

// ConsumerFuncs adapts a pair of functions to Consumer. Nil fields are no-ops.
type ConsumerFuncs struct {
	Snapshot   func(screen.Snapshot)
	Terminated func()
}

func (f ConsumerFuncs) OnSnapshot(s screen.Snapshot) {
	if f.Snapshot != nil {
		f.Snapshot(s)
	}
}

func (f ConsumerFuncs) OnTerminated() {
	if f.Terminated != nil {
		f.Terminated()
	}
}

// Option configures a Poller.
type Option func(*Poller)

// WithBufferSize sets the read chunk size. Non-positive values are ignored.
func WithBufferSize(n int) Option {
	return func(p *Poller) {
		if n > 0 {
			p.bufSize = n
		}
	}
}

// WithLogger sets the logger used for read errors.
func WithLogger(l *slog.Logger) Option {
	return func(p *Poller) {
		if l != nil {
			p.log = l
		}
	}
}

// Poller reads from a source, decodes into a screen and notifies a consumer.
type Poller struct {
	src      io.Reader
	scr      *screen.Screen
	dec      *vt.Decoder
	consumer Consumer
	bufSize  int
	log      *slog.Logger

	mu    sync.Mutex
	state State
	done  chan struct{}
}

// New returns an idle poller.
func New(src io.Reader, scr *screen.Screen, c Consumer, opts ...Option) *Poller {
	p := &Poller{
		src:      src,
		scr:      scr,
		dec:      vt.NewDecoder(scr),
		consumer: c,
		bufSize:  DefaultBufferSize,
		log:      slog.New(slog.DiscardHandler),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.consumer == nil {
		p.consumer = ConsumerFuncs{}
	}
	return p
}

// State returns the current lifecycle state.
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Start launches the reader goroutine.
func (p *Poller) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateIdle {
		return errors.WrapPrefix(ErrAlreadyStarted, p.state.String(), 0)
	}
	p.state = StateRunning
	go p.run()
	return nil
}

// Done is closed once the poller has stopped and OnTerminated has returned.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the poller has stopped. It returns immediately for a
// poller that was never started.
func (p *Poller) Wait() {
	if p.State() == StateIdle {
		return
	}
	<-p.done
}

func (p *Poller) run() {
	buf := make([]byte, p.bufSize)
	for {
		n, err := p.src.Read(buf)
		if n > 0 {
			p.dec.Feed(buf[:n])
			p.consumer.OnSnapshot(p.scr.Snapshot())
		}
		if err != nil {
			if err == io.EOF {
				p.log.Debug("poller source closed")
			} else {
				p.log.Warn("poller read failed", "error", err)
			}
			break
		}
	}

	p.mu.Lock()
	p.state = StateStopped
	p.mu.Unlock()

	p.consumer.OnTerminated()
	close(p.done)
}
