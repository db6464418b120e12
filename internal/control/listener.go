package control

import (
	"fmt"

	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/pkg/idle"
)

var _ engine.Listener = (*Controller)(nil)

func (c *Controller) OnUpdating() {
	c.view.ShowStatus("loading")
}

// OnProgress shows the progress text and keeps the UI responsive while
// the engine is busy inside a load.
func (c *Controller) OnProgress(info string, percent float64) {
	c.throttle.Progress(info, percent)
}

func (c *Controller) OnUpdated() {
	c.view.ShowStatus("")
	c.view.Repaint()
}

func (c *Controller) OnInteraction() {
	c.log.Trace().Msg("interaction")
}

func (c *Controller) OnOrientationChanged() {
	c.view.Repaint()
}

func (c *Controller) OnMeasurement(m engine.Measurement) {
	c.view.ShowStatus(FormatMeasurement(m))
}

// FormatMeasurement renders a measurement for the status line
func FormatMeasurement(m engine.Measurement) string {
	return fmt.Sprintf("length %.2f, total %.2f at (%.2f, %.2f, %.2f)",
		m.Length, m.EndLength, m.Point.X, m.Point.Y, m.Point.Z)
}

// HandleEvent feeds a UI input event to the idle monitor. It reports
// whether the event counted as user activity.
func (c *Controller) HandleEvent(ev idle.Event) bool {
	return c.idle.Observe(ev)
}

// CheckIdle runs the periodic idle check; front ends call it every
// idle.CheckInterval. It reports whether the viewer was just reset.
func (c *Controller) CheckIdle() bool {
	return c.idle.Check()
}

// Idling reports whether the viewer has been reset for inactivity and
// not touched since
func (c *Controller) Idling() bool {
	return c.idle.Idling()
}

// SetMaxIdle changes the idle timeout in seconds; zero disables it
func (c *Controller) SetMaxIdle(seconds float64) {
	c.idle.SetMaxIdle(idle.Seconds(seconds))
}

// SetFPS changes the redraw rate used while loading
func (c *Controller) SetFPS(fps float64) {
	c.throttle.SetFPS(fps)
}
