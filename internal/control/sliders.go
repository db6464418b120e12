package control

import (
	"github.com/philipparndt/govox/pkg/slider"
)

// Slider returns the state of one slider
func (c *Controller) Slider(ctl slider.Control) slider.Slider {
	return c.sliders[ctl]
}

// SliderChanged handles a slider moved by the user to raw ticks
func (c *Controller) SliderChanged(ctl slider.Control, raw int) {
	stored := c.sliders[ctl].SetValue(raw)
	if stored != raw {
		c.view.SetSlider(ctl, stored)
	}
	c.apply(ctl, stored)
}

// StepSlider moves a slider by n single steps, as arrow keys do
func (c *Controller) StepSlider(ctl slider.Control, n int) {
	raw := c.sliders[ctl].Step(n)
	c.view.SetSlider(ctl, raw)
	c.apply(ctl, raw)
}

// PageSlider moves a slider by n page steps
func (c *Controller) PageSlider(ctl slider.Control, n int) {
	raw := c.sliders[ctl].Page(n)
	c.view.SetSlider(ctl, raw)
	c.apply(ctl, raw)
}

// setSlider moves a slider programmatically and forwards the value
func (c *Controller) setSlider(ctl slider.Control, raw int) {
	raw = c.sliders[ctl].SetValue(raw)
	c.view.SetSlider(ctl, raw)
	c.apply(ctl, raw)
}

func (c *Controller) apply(ctl slider.Control, raw int) {
	switch ctl {
	case slider.Clip:
		c.engine.SetClipDistance(slider.ClipDistance(raw))
	case slider.Zoom:
		c.engine.SetZoom(slider.ZoomRatio(raw))
	case slider.Rotation:
		c.engine.SetAngle(slider.Angle(raw))
	case slider.Tilt:
		c.engine.SetTilt(slider.Angle(raw))
	case slider.Emission:
		c.engine.SetEmission(slider.Ratio(raw))
	case slider.Absorption:
		c.engine.SetAbsorption(slider.Ratio(raw))
	}
}

// ClipDemo forwards a continuous swipe value in [0,1] as clip distance
func (c *Controller) ClipDemo(v float64) {
	c.engine.SetClipDistance(1 - 2*clamp01(v))
}

// ZoomDemo forwards a continuous swipe value in [0,1] as zoom
func (c *Controller) ZoomDemo(v float64) {
	c.engine.SetZoom(clamp01(v))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
