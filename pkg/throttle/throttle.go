// Package throttle bounds how often the UI is forced to redraw while the
// renderer reports progress from inside a long synchronous call.
package throttle

import (
	"fmt"
	"time"
)

// Display receives progress feedback
type Display interface {
	// ShowStatus sets the progress text; it is called on every notification
	ShowStatus(text string)
	// Repaint forces an immediate redraw
	Repaint()
	// ProcessEvents pumps pending UI events
	ProcessEvents()
}

// Throttle forwards every progress message but forces a redraw at most
// once per frame interval.
type Throttle struct {
	display Display
	fps     float64
	last    time.Time
	now     func() time.Time
}

// New creates a throttle for the target frame rate. The frame interval
// starts counting immediately.
func New(display Display, fps float64, now func() time.Time) *Throttle {
	if now == nil {
		now = time.Now
	}
	t := &Throttle{display: display, now: now}
	t.SetFPS(fps)
	t.last = now()
	return t
}

// SetFPS changes the target frame rate; non-positive values fall back to 1
func (t *Throttle) SetFPS(fps float64) {
	if fps <= 0 {
		fps = 1
	}
	t.fps = fps
}

// Interval returns the minimum time between forced redraws
func (t *Throttle) Interval() time.Duration {
	return time.Duration(float64(time.Second) / t.fps)
}

// Progress shows text and, once the frame interval has passed, repaints
// and pumps the event loop. It reports whether a redraw was forced.
func (t *Throttle) Progress(info string, percent float64) bool {
	t.display.ShowStatus(FormatProgress(info, percent))

	now := t.now()
	if now.Sub(t.last) <= t.Interval() {
		return false
	}
	t.display.Repaint()
	t.display.ProcessEvents()
	t.last = now
	return true
}

// FormatProgress renders a progress message; percent is a fraction in [0,1]
// and is omitted when not positive.
func FormatProgress(info string, percent float64) string {
	if percent > 0 {
		return fmt.Sprintf("%s: %d%%", info, int(100*percent+0.5))
	}
	return info
}
