package gui

import (
	"fmt"
	"image/png"
	"os"

	"github.com/philipparndt/govox/internal/control"
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/pkg/slider"
)

var _ control.View = (*GUI)(nil)

func (g *GUI) ShowStatus(text string) {
	g.status.SetText(text)
}

// Repaint refreshes the state summary and the window content
func (g *GUI) Repaint() {
	g.state.SetText(g.summary())
	if c := g.window.Content(); c != nil {
		c.Refresh()
	}
}

// Redraw is Repaint; fyne renders on its own goroutine once the UI thread is free
func (g *GUI) Redraw() {
	g.Repaint()
}

// ProcessEvents does nothing; fyne offers no event pump to the UI thread,
// so progress shown during a load appears once the load returns
func (g *GUI) ProcessEvents() {}

func (g *GUI) SetSlider(c slider.Control, raw int) {
	s, ok := g.sliders[c]
	if !ok {
		return
	}
	g.syncing = true
	defer func() { g.syncing = false }()
	s.SetValue(float64(raw))
}

func (g *GUI) SetToggle(t control.Toggle, on bool) {
	c, ok := g.checks[t]
	if !ok {
		return
	}
	g.syncing = true
	defer func() { g.syncing = false }()
	c.SetChecked(on)
}

func (g *GUI) SetSampling(s control.Sampling) {
	g.syncing = true
	defer func() { g.syncing = false }()
	g.sampling.SetSelected(samplingOptions[s])
}

func (g *GUI) SetStereo(m engine.StereoMode) {
	g.syncing = true
	defer func() { g.syncing = false }()
	g.stereo.SetSelected(stereoOptions[m])
}

func (g *GUI) SetLabel(text string) {
	g.label.SetText(text)
}

func (g *GUI) RemovePlaceholder() {
	g.placeholder.Hide()
}

// Grab captures the window canvas and writes it as a PNG image
func (g *GUI) Grab(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, g.window.Canvas().Capture()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// summary describes the engine state shown in the center of the window
func (g *GUI) summary() string {
	s := g.engine.State()
	planes := 0
	for _, p := range s.ClipPlanes {
		if p.Enabled {
			planes++
		}
	}
	return fmt.Sprintf("angle %.1f°  tilt %.1f°  zoom %.2f  clip %.2f  planes %d\nemission %.2f  absorption %.2f  sampling %.1f×",
		s.Angle, s.Tilt, s.Zoom, s.ClipDistance, planes, s.Emission, s.Absorption, s.Oversampling)
}
