package control

import (
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/pkg/slider"
	"github.com/philipparndt/govox/pkg/tilt"
)

// SetToggle handles a toggle switched by the user
func (c *Controller) SetToggle(t Toggle, on bool) {
	if f, ok := t.Flip(); ok {
		c.flips.Toggle(f, on)
		return
	}

	switch t {
	case Rotate:
		c.rotating = on
		c.applyRotation()
	case Reverse:
		c.reverse = on
		c.applyRotation()
	case InverseMode:
		c.engine.SetInverseMode(on)
	case GradientMagnitude:
		c.engine.SetGradientMagnitude(on)
		// each shading mode keeps its own values
		c.setSlider(slider.Emission, slider.FromRatio(c.engine.Emission()))
		c.setSlider(slider.Absorption, slider.FromRatio(c.engine.Absorption()))
	case ShowPlane:
		c.engine.SetShowPlane(on)
	case ShowIso:
		c.engine.SetShowIsoSurface(on)
	case ClipIso:
		c.engine.SetClipIsoSurface(on)
	}
}

// setToggle switches a toggle programmatically and updates the view
func (c *Controller) setToggle(t Toggle, on bool) {
	c.SetToggle(t, on)
	c.view.SetToggle(t, on)
}

// DisableRotation stops the automatic rotation
func (c *Controller) DisableRotation() {
	c.setToggle(Rotate, false)
}

func (c *Controller) applyRotation() {
	omega := 0.0
	if c.rotating {
		omega = c.cfg.Defaults.RotationSpeed
		if c.reverse {
			omega = -omega
		}
	}
	c.engine.SetRotationSpeed(omega)
}

// SetStereo selects the stereo output mode
func (c *Controller) SetStereo(m engine.StereoMode) {
	c.stereo = m
	c.engine.SetStereoMode(m)
	c.log.Debug().Stringer("stereo", m).Msg("stereo mode")
}

// SetSampling selects the ray sampling rate
func (c *Controller) SetSampling(s Sampling) {
	c.sampling = s
	c.engine.SetOversampling(s.Factor())
}

// Tack captures the renderer's current near plane as a clip plane. The
// sixth tack clears all planes; it returns true when that happened.
func (c *Controller) Tack() bool {
	cleared := c.clips.Tack(c.engine.NearPlane())
	if cleared {
		c.log.Info().Msg("clip planes exhausted, cleared")
	} else {
		c.log.Debug().Int("count", c.clips.Count()).Msg("clip plane tacked")
	}
	return cleared
}

// ClearPlanes disables all captured clip planes
func (c *Controller) ClearPlanes() {
	c.clips.Clear()
	c.log.Debug().Msg("clip planes cleared")
}

var flipToggles = map[tilt.Flip]Toggle{
	tilt.XYPlus:  FlipXYPlus,
	tilt.XYMinus: FlipXYMinus,
	tilt.YZPlus:  FlipYZPlus,
	tilt.YZMinus: FlipYZMinus,
}
