package control

import (
	"github.com/philipparndt/govox/internal/config"
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/pkg/slider"
)

// ResetInteractions undoes everything the user changed by hand: clip
// planes, flips and slider positions.
func (c *Controller) ResetInteractions() {
	c.clips.Clear()
	c.flips.Reset()
	for _, t := range flipToggles {
		c.view.SetToggle(t, false)
	}
	for ctl := range c.sliders {
		c.setSlider(slider.Control(ctl), c.sliders[ctl].Initial)
	}
}

// ResetDefaults resets all interactions and applies the defaults bundle.
// It is what the idle monitor runs.
func (c *Controller) ResetDefaults() {
	c.log.Info().Msg("resetting to defaults")
	c.ResetInteractions()
	c.applyDefaults(c.cfg.Defaults)
}

func (c *Controller) applyDefaults(d config.Defaults) {
	c.reverse = false
	c.view.SetToggle(Reverse, false)
	c.rotating = d.RotationSpeed != 0
	c.view.SetToggle(Rotate, c.rotating)
	c.engine.SetRotationSpeed(d.RotationSpeed)

	c.setSlider(slider.Rotation, slider.FromAngle(d.Angle))
	c.setSlider(slider.Tilt, slider.FromAngle(d.Tilt))
	c.engine.SetTiltXY(d.TiltXY)
	c.engine.SetTiltYZ(d.TiltYZ)
	c.engine.SetAnimatedTilt(d.AnimTilt, d.AnimOmega)

	c.setSlider(slider.Clip, slider.FromClipDistance(d.Clip))
	c.setSlider(slider.Zoom, slider.FromRatio(d.Zoom))
	c.engine.SetAnimatedZoom(d.AnimZoom, d.AnimFreq)

	c.engine.SetTransferFunction(d.TFCenter, d.TFSize, d.TFInverse)
	c.setToggle(InverseMode, false)
	c.setToggle(GradientMagnitude, d.GradMag)
	c.setSlider(slider.Emission, slider.FromRatio(d.Emission))
	c.setSlider(slider.Absorption, slider.FromRatio(d.Absorption))
	c.engine.SetColorHue(d.Hue)

	c.SetSampling(RegularSampling)
	c.view.SetSampling(RegularSampling)

	c.setToggle(ShowPlane, false)
	c.setToggle(ShowIso, true)
	c.setToggle(ClipIso, false)

	stereo := engine.ParseStereoMode(d.Stereo)
	c.SetStereo(stereo)
	c.view.SetStereo(stereo)
	c.engine.SetStereoParams(d.StereoBase, d.StereoFocus)
}
