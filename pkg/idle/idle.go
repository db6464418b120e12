// Package idle detects when the user has stopped interacting with the viewer.
package idle

import (
	"time"

	"github.com/rs/zerolog"
)

// CheckInterval is the polling cadence front ends use to call Check
const CheckInterval = time.Second

// Monitor tracks the time since the last qualifying input event.
// It is driven from the UI thread only.
type Monitor struct {
	last    time.Time
	idling  bool
	maxIdle time.Duration
	onIdle  func()
	now     func() time.Time
	log     zerolog.Logger
}

// Option configures a Monitor
type Option func(*Monitor)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Option {
	return func(m *Monitor) { m.log = log }
}

// NewMonitor creates a monitor that calls onIdle once each time the user
// has been inactive for maxIdle. A maxIdle of zero or less disables it.
func NewMonitor(maxIdle time.Duration, onIdle func(), opts ...Option) *Monitor {
	m := &Monitor{
		maxIdle: maxIdle,
		onIdle:  onIdle,
		now:     time.Now,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.last = m.now()
	return m
}

// Seconds converts a float number of seconds to a duration
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// SetMaxIdle changes the idle threshold
func (m *Monitor) SetMaxIdle(d time.Duration) {
	m.maxIdle = d
}

// MaxIdle returns the idle threshold
func (m *Monitor) MaxIdle() time.Duration {
	return m.maxIdle
}

// Idling reports whether the idle transition has fired since the last activity
func (m *Monitor) Idling() bool {
	return m.idling
}

// Elapsed returns the time since the last qualifying event
func (m *Monitor) Elapsed() time.Duration {
	return m.now().Sub(m.last)
}

// Observe records an input event. It reports whether the event qualified.
func (m *Monitor) Observe(ev Event) bool {
	if !ev.Qualifies() {
		return false
	}
	m.Touch()
	return true
}

// Touch restarts the idle window and clears the idling flag
func (m *Monitor) Touch() {
	m.last = m.now()
	m.idling = false
}

// Check fires the idle transition when the threshold has passed.
// It reports whether the transition fired on this call.
func (m *Monitor) Check() bool {
	if m.maxIdle <= 0 || m.idling {
		return false
	}
	elapsed := m.Elapsed()
	if elapsed < m.maxIdle {
		return false
	}

	m.idling = true
	m.log.Info().Dur("idle", elapsed).Msg("user idle, resetting to defaults")
	if m.onIdle != nil {
		m.onIdle()
	}
	return true
}
