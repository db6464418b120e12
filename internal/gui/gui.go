// Package gui is the fyne front end of the viewer: sliders, toggles, open
// dialogs and drag and drop, all forwarded to the control layer.
package gui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/govox/internal/config"
	"github.com/philipparndt/govox/internal/control"
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/internal/logging"
	"github.com/philipparndt/govox/pkg/idle"
	"github.com/philipparndt/govox/pkg/slider"
	"github.com/philipparndt/govox/pkg/watcher"
	"github.com/rs/zerolog"
)

// AppID identifies the application to fyne
const AppID = "io.github.philipparndt.govox"

type GUI struct {
	window fyne.Window
	ctl    *control.Controller
	engine *engine.Headless

	sliders     map[slider.Control]*widget.Slider
	checks      map[control.Toggle]*widget.Check
	sampling    *widget.RadioGroup
	stereo      *widget.RadioGroup
	label       *widget.Label
	status      *widget.Label
	state       *widget.Label
	placeholder *widget.Label

	// syncing is set while the controller moves widgets, so their
	// callbacks do not echo the change back
	syncing bool

	fileWatcher *watcher.FileWatcher
	log         zerolog.Logger
}

// New builds the window and its controls inside a fyne app
func New(a fyne.App, cfg config.Config, log zerolog.Logger) *GUI {
	g := &GUI{
		window:  a.NewWindow("govox"),
		engine:  engine.NewHeadless(log),
		sliders: make(map[slider.Control]*widget.Slider),
		checks:  make(map[control.Toggle]*widget.Check),
		log:     log,
	}
	g.buildWidgets()
	g.ctl = control.New(g.engine, g, cfg, log, control.WithLoadHook(g.watch))
	g.window.SetContent(g.layout())
	g.window.SetOnDropped(g.onDropped)
	g.window.Canvas().SetOnTypedKey(g.onTypedKey)
	g.window.Resize(fyne.NewSize(1200, 800))
	return g
}

// Run starts the fyne front end and blocks until the window closes
func Run(cfg config.Config, files []string, log zerolog.Logger) error {
	log = logging.Component(log, "gui")
	a := app.NewWithID(AppID)
	g := New(a, cfg, log)

	if cfg.Watch {
		fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, log)
		if err != nil {
			log.Warn().Err(err).Msg("auto-reload not available")
		} else {
			fw.Start()
			defer fw.Close()
			g.fileWatcher = fw
		}
	}

	g.ctl.Start()
	if len(files) > 0 {
		if err := g.ctl.Open(files); err != nil {
			return fmt.Errorf("failed to open files: %w", err)
		}
	}

	stop := make(chan struct{})
	defer close(stop)
	go g.idleLoop(stop)

	g.window.ShowAndRun()
	return nil
}

// idleLoop runs the idle check on the UI thread every idle.CheckInterval
func (g *GUI) idleLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(idle.CheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			fyne.Do(func() { g.ctl.CheckIdle() })
		}
	}
}

// watch replaces the watched files after a successful load. Changes are
// reloaded on the UI thread.
func (g *GUI) watch(paths []string) {
	if g.fileWatcher == nil {
		return
	}
	err := g.fileWatcher.Watch(paths, func(changed string) {
		fyne.Do(func() {
			g.log.Info().Str("file", changed).Msg("file changed, reloading")
			if err := g.ctl.Reload(); err != nil {
				g.log.Error().Err(err).Msg("reload failed")
			}
		})
	})
	if err != nil {
		g.log.Warn().Err(err).Msg("failed to watch loaded files")
	}
}

// Controller exposes the control layer driven by the window
func (g *GUI) Controller() *control.Controller {
	return g.ctl
}

// Window returns the main window
func (g *GUI) Window() fyne.Window {
	return g.window
}
