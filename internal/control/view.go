package control

import (
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/pkg/slider"
	"github.com/philipparndt/govox/pkg/throttle"
	"github.com/philipparndt/govox/pkg/tilt"
)

// Toggle identifies a boolean control of the viewer
type Toggle int

const (
	Rotate Toggle = iota
	Reverse
	InverseMode
	GradientMagnitude
	FlipXYPlus
	FlipXYMinus
	FlipYZPlus
	FlipYZMinus
	ShowPlane
	ShowIso
	ClipIso
)

var toggleNames = [...]string{"rotate", "reverse", "inverse", "gradmag", "flip+xy", "flip-xy", "flip+yz", "flip-yz",
	"plane", "show-iso", "clip-iso"}

func (t Toggle) String() string {
	if t < 0 || int(t) >= len(toggleNames) {
		return "unknown"
	}
	return toggleNames[t]
}

// Flip maps a flip toggle to its tilt flip
func (t Toggle) Flip() (tilt.Flip, bool) {
	switch t {
	case FlipXYPlus:
		return tilt.XYPlus, true
	case FlipXYMinus:
		return tilt.XYMinus, true
	case FlipYZPlus:
		return tilt.YZPlus, true
	case FlipYZMinus:
		return tilt.YZMinus, true
	default:
		return 0, false
	}
}

// Sampling selects the ray sampling rate
type Sampling int

const (
	Undersampling Sampling = iota
	RegularSampling
	Oversampling
)

// Factor returns the oversampling factor the engine expects
func (s Sampling) Factor() float64 {
	switch s {
	case Undersampling:
		return 0.5
	case Oversampling:
		return 2
	default:
		return 1
	}
}

func (s Sampling) String() string {
	switch s {
	case Undersampling:
		return "undersampling"
	case Oversampling:
		return "oversampling"
	default:
		return "regular"
	}
}

// View is the UI the controller drives. Setting a control through the
// view must not call back into the controller.
type View interface {
	ShowStatus(text string)
	// Repaint asks for a redraw on the next frame; it must not block
	Repaint()
	// Redraw draws a frame right away. It is only called while a load
	// keeps the UI thread busy.
	Redraw()
	ProcessEvents()

	SetSlider(c slider.Control, raw int)
	SetToggle(t Toggle, on bool)
	SetSampling(s Sampling)
	SetStereo(m engine.StereoMode)
	SetLabel(text string)
	// RemovePlaceholder hides the hint shown while no data is loaded
	RemovePlaceholder()
	// Grab saves the rendered window as a PNG image at path
	Grab(path string) error
}

// loadDisplay is the view as seen by the progress throttle, which has to
// draw while the engine blocks the UI thread.
type loadDisplay struct{ view View }

func (d loadDisplay) ShowStatus(text string) { d.view.ShowStatus(text) }
func (d loadDisplay) Repaint()               { d.view.Redraw() }
func (d loadDisplay) ProcessEvents()         { d.view.ProcessEvents() }

var _ throttle.Display = loadDisplay{}
