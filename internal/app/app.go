// Package app provides application lifecycle and orchestration.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-errors/errors"
	"github.com/jesseduffield/gocui"

	"github.com/abdullathedruid/shellpane/internal/config"
	"github.com/abdullathedruid/shellpane/internal/input"
	"github.com/abdullathedruid/shellpane/internal/pane"
	"github.com/abdullathedruid/shellpane/internal/process"
	"github.com/abdullathedruid/shellpane/internal/screen"
	"github.com/abdullathedruid/shellpane/internal/terminal"
	"github.com/abdullathedruid/shellpane/internal/ui"
	"github.com/abdullathedruid/shellpane/internal/version"
)

const (
	statusViewName = "statusbar"

	// processRefreshInterval is how often the foreground process name is
	// looked up for the status line.
	processRefreshInterval = time.Second
)

// App hosts a single shell pane above a status line.
type App struct {
	gui     *gocui.Gui
	config  *config.Config
	log     *slog.Logger
	input   *input.Handler
	pane    *pane.Pane
	watcher *config.Watcher

	// Only touched on the gui goroutine
	theme   ui.Theme
	process string

	stopRefresh chan struct{}
	closeOnce   sync.Once
}

// New creates the gui and starts the shell sized to fit it.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	bindings, err := bindingsFrom(cfg.Keys)
	if err != nil {
		return nil, err
	}

	g, err := gocui.NewGui(gocui.NewGuiOpts{
		OutputMode: gocui.OutputTrue,
	})
	if err != nil {
		return nil, errors.WrapPrefix(err, "initializing GUI", 0)
	}

	a := &App{
		gui:         g,
		config:      cfg,
		log:         log,
		input:       input.NewHandler(bindings),
		theme:       themeFrom(cfg.Theme),
		stopRefresh: make(chan struct{}),
	}

	maxX, maxY := g.Size()
	rows, cols := pane.FitSize(maxX, maxY, cfg.Rows, cfg.Cols)
	p, err := pane.Start(pane.Options{
		Terminal: terminal.Options{
			Shell: cfg.Shell,
			Args:  cfg.ShellArgs,
			Rows:  rows,
			Cols:  cols,
			Env:   cfg.Environment(),
		},
		BufferSize: cfg.ReadBufferSize,
		Logger:     log,
	}, a.redraw, a.shellExited)
	if err != nil {
		g.Close()
		return nil, err
	}
	a.pane = p

	return a, nil
}

// Run starts the main event loop. It returns when the user quits, the shell
// exits or the process is signalled.
func (a *App) Run() error {
	defer a.Close()

	a.gui.SetManagerFunc(a.layout)

	if err := a.setupKeybindings(); err != nil {
		return fmt.Errorf("setting up keybindings: %w", err)
	}

	if w, err := config.Watch(a.config.ConfigFile(), a.log, a.applyConfig); err != nil {
		a.log.Warn("config watch disabled", "error", err)
	} else {
		a.watcher = w
	}

	go a.backgroundRefresh(a.stopRefresh)

	// Handle SIGINT/SIGTERM for clean exit
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		a.log.Info("signal received", "signal", sig.String())
		a.gui.Update(func(g *gocui.Gui) error {
			return gocui.ErrQuit
		})
	}()

	if err := a.gui.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return fmt.Errorf("main loop: %w", err)
	}

	return nil
}

// Close stops the shell and releases the terminal.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		close(a.stopRefresh)
		if a.watcher != nil {
			a.watcher.Close()
		}
		if err := a.pane.Close(); err != nil {
			a.log.Debug("pane close", "error", err)
		}
		a.gui.Close()
	})
}

// redraw is called by the pane after each new snapshot.
func (a *App) redraw() {
	a.gui.Update(func(g *gocui.Gui) error { return nil })
}

// shellExited quits the application when the shell's output ends.
func (a *App) shellExited() {
	a.log.Info("shell exited, quitting")
	a.gui.Update(func(g *gocui.Gui) error {
		return gocui.ErrQuit
	})
}

// applyConfig re-applies the reloadable parts of a changed config file.
func (a *App) applyConfig(cfg *config.Config) {
	theme := themeFrom(cfg.Theme)
	a.gui.Update(func(g *gocui.Gui) error {
		a.theme = theme
		return nil
	})
}

// backgroundRefresh periodically looks up the foreground process so the
// status line and title follow what runs in the shell.
func (a *App) backgroundRefresh(stop <-chan struct{}) {
	ticker := time.NewTicker(processRefreshInterval)
	defer ticker.Stop()

	lookup := func() {
		name, _, err := process.Foreground(a.pane.Pid())
		if err != nil {
			a.log.Debug("foreground lookup failed", "error", err)
			return
		}
		a.gui.Update(func(g *gocui.Gui) error {
			a.process = name
			return nil
		})
	}

	lookup()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			lookup()
		}
	}
}

// layout is the gocui manager function that arranges views.
func (a *App) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	screenLayout := pane.CalculateLayout(maxX, maxY)
	snap := a.pane.Snapshot()
	mode := a.input.Mode()

	// A fixed-size shell smaller than the terminal keeps its own frame
	paneLayout := screenLayout.Pane
	if a.config.Rows > 0 || a.config.Cols > 0 {
		frame := pane.Frame(snap.Rows(), snap.Cols())
		if frame.X1 < paneLayout.X1 && frame.Y1 < paneLayout.Y1 {
			paneLayout = frame
		}
	}

	v, err := g.SetView(a.pane.ViewName, paneLayout.X0, paneLayout.Y0, paneLayout.X1, paneLayout.Y1, 0)
	if err != nil && !errors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	ui.ConfigurePaneView(v, ui.PaneTitle(snap, a.process), mode, a.theme)
	v.Editor = gocui.EditorFunc(a.terminalEditor)

	v.Clear()
	if err := ui.RenderSnapshot(v, snap, a.theme); err != nil {
		return err
	}

	if _, err := g.SetCurrentView(a.pane.ViewName); err != nil {
		return err
	}
	cursor := snap.Cursor()
	v.SetCursor(cursor.Col, cursor.Row)
	g.Cursor = mode.IsTerminal() && snap.CursorVisible()

	return a.layoutStatus(g, screenLayout.Status, snap, mode)
}

func (a *App) layoutStatus(g *gocui.Gui, l pane.Layout, snap screen.Snapshot, mode input.Mode) error {
	v, err := g.SetView(statusViewName, l.X0, l.Y0, l.X1, l.Y1, 0)
	if err != nil && !errors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	ui.ConfigureStatusView(v)

	keys := a.config.Keys
	info := ui.StatusInfo{
		Mode:    mode,
		Process: a.process,
		Rows:    snap.Rows(),
		Cols:    snap.Cols(),
		Exited:  a.pane.Exited(),
		Help:    ui.HelpFor(mode, keys.Escape, keys.Quit, keys.Resume),
		Version: version.Short(),
	}

	v.Clear()
	fmt.Fprint(v, ui.RenderStatusLine(info, l.Width()))
	return nil
}
