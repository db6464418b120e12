// Package control is the stateful layer between the viewer UI and the
// rendering engine. It converts slider ticks and toggles into engine
// parameters, captures clip planes, routes dropped files, resets the
// viewer after inactivity and throttles redraws during long loads.
//
// A Controller is used from the UI thread only.
package control

import (
	"time"

	"github.com/philipparndt/govox/internal/config"
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/pkg/clip"
	"github.com/philipparndt/govox/pkg/drop"
	"github.com/philipparndt/govox/pkg/idle"
	"github.com/philipparndt/govox/pkg/slider"
	"github.com/philipparndt/govox/pkg/throttle"
	"github.com/philipparndt/govox/pkg/tilt"
	"github.com/rs/zerolog"
)

// Controller owns all control state and is the engine's listener
type Controller struct {
	engine engine.Engine
	view   View
	cfg    config.Config

	sliders  [slider.Absorption + 1]slider.Slider
	flips    *tilt.Combinator
	clips    *clip.Accumulator
	idle     *idle.Monitor
	dropper  *drop.Dispatcher
	throttle *throttle.Throttle

	rotating bool
	reverse  bool
	sampling Sampling
	stereo   engine.StereoMode

	lastLoad drop.Decision
	onLoaded func(paths []string)

	now func() time.Time
	log zerolog.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithClock replaces time.Now for the idle monitor and the throttle
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLoadHook registers a function called with the paths of every
// successful load, e.g. to watch them for changes.
func WithLoadHook(fn func(paths []string)) Option {
	return func(c *Controller) { c.onLoaded = fn }
}

// New wires a controller to its engine and view and registers itself as
// the engine listener.
func New(eng engine.Engine, view View, cfg config.Config, log zerolog.Logger, opts ...Option) *Controller {
	c := &Controller{
		engine:   eng,
		view:     view,
		cfg:      cfg,
		sampling: RegularSampling,
		rotating: true,
		now:      time.Now,
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}

	defaults := slider.Defaults()
	for ctl, s := range defaults {
		c.sliders[ctl] = s
	}

	c.flips = tilt.NewCombinator(eng)
	c.clips = clip.NewAccumulator(eng, func() { c.setSlider(slider.Clip, 0) })
	c.idle = idle.NewMonitor(idle.Seconds(cfg.MaxIdle), c.ResetDefaults,
		idle.WithClock(c.now), idle.WithLogger(log))
	c.dropper = drop.NewDispatcher(eng, view.RemovePlaceholder, log)
	c.throttle = throttle.New(loadDisplay{view}, cfg.FPS, c.now)

	eng.SetListener(c)
	return c
}

// Start loads the placeholder volume and applies the defaults bundle.
// A missing placeholder is logged and otherwise ignored.
func (c *Controller) Start() {
	if c.cfg.Teaser != "" {
		if err := c.engine.LoadVolume(c.cfg.Teaser); err != nil {
			c.log.Warn().Err(err).Str("teaser", c.cfg.Teaser).Msg("placeholder volume not loaded")
		}
	}
	c.applyDefaults(c.cfg.Defaults)
	c.view.ShowStatus("")
}

// Config returns the configuration the controller runs with
func (c *Controller) Config() config.Config {
	return c.cfg
}

// HasTeaser reports whether the placeholder is still shown
func (c *Controller) HasTeaser() bool {
	return c.dropper.HasTeaser()
}

// ClipPlanes returns the captured clip plane slots
func (c *Controller) ClipPlanes() [clip.Capacity]clip.Slot {
	return c.clips.Slots()
}

// Flips returns the flip toggles
func (c *Controller) Flips() tilt.FlipState {
	return c.flips.State()
}

// Sampling returns the selected sampling rate
func (c *Controller) Sampling() Sampling {
	return c.sampling
}

// Stereo returns the selected stereo mode
func (c *Controller) Stereo() engine.StereoMode {
	return c.stereo
}

// Rotating reports whether automatic rotation is on
func (c *Controller) Rotating() bool {
	return c.rotating
}
