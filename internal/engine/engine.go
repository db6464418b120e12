// Package engine describes the rendering engine the control layer drives,
// and the notifications it sends back.
package engine

import (
	"github.com/philipparndt/govox/pkg/geometry"
)

// Loader loads and clears data sets
type Loader interface {
	LoadVolume(path string) error
	LoadSeries(paths []string) error
	LoadSurface(path string) error
	ClearVolume()
	ClearSurface()
}

// Orientation controls rotation, tilt and zoom
type Orientation interface {
	SetAngle(deg float64)
	SetRotationSpeed(omega float64)
	SetTilt(deg float64)
	SetTiltXY(deg float64)
	SetTiltYZ(deg float64)
	SetAnimatedTilt(target, omega float64)
	SetZoom(ratio float64)
	SetAnimatedZoom(target, freq float64)
}

// Clipping controls the clip distance and the user clip planes
type Clipping interface {
	SetClipDistance(ratio float64)
	NearPlane() geometry.Plane
	SetClipPlane(index int, plane geometry.Plane)
	EnableClipPlane(index int, on bool)
	DisableClipPlanes()
	// SetShowPlane outlines the near clip plane
	SetShowPlane(on bool)
}

// Iso controls the iso surface extracted from the loaded volume
type Iso interface {
	ExtractIsoSurface(value float64) error
	ClearIsoSurface()
	SetShowIsoSurface(on bool)
	// SetClipIsoSurface applies the clip planes to the iso surface too
	SetClipIsoSurface(on bool)
}

// Shading controls the transfer function and sampling
type Shading interface {
	SetTransferFunction(center, size float64, inverse bool)
	SetEmission(ratio float64)
	Emission() float64
	SetAbsorption(ratio float64)
	Absorption() float64
	SetColorHue(hue float64)
	SetOversampling(factor float64)
	SetInverseMode(on bool)
	SetGradientMagnitude(on bool)
	GradientMagnitude() bool
}

// StereoMode selects how stereo images are produced
type StereoMode int

const (
	StereoOff StereoMode = iota
	StereoAnaglyph
	StereoInterlaced
	StereoQuadBuffer
)

// StereoModes lists every mode in menu order
func StereoModes() []StereoMode {
	return []StereoMode{StereoOff, StereoAnaglyph, StereoInterlaced, StereoQuadBuffer}
}

func (m StereoMode) String() string {
	switch m {
	case StereoOff:
		return "off"
	case StereoAnaglyph:
		return "anaglyph"
	case StereoInterlaced:
		return "interlaced"
	case StereoQuadBuffer:
		return "quad-buffer"
	default:
		return "unknown"
	}
}

// ParseStereoMode maps a config name to a mode; unknown names are off
func ParseStereoMode(name string) StereoMode {
	for _, m := range StereoModes() {
		if m.String() == name {
			return m
		}
	}
	return StereoOff
}

// Stereo controls stereo output
type Stereo interface {
	SetStereoMode(mode StereoMode)
	SetStereoParams(base, focus float64)
}

// Engine is the complete rendering engine. All calls are synchronous and
// made from the UI thread.
type Engine interface {
	Loader
	Orientation
	Clipping
	Shading
	Iso
	Stereo

	// SetListener registers the receiver of engine notifications
	SetListener(l Listener)
}

// Measurement is a distance measured interactively in the renderer
type Measurement struct {
	Point     geometry.Vector3
	Length    float64
	EndLength float64
}

// Listener receives notifications the engine sends synchronously from
// inside its own calls.
type Listener interface {
	OnUpdating()
	OnProgress(info string, percent float64)
	OnUpdated()
	OnInteraction()
	OnOrientationChanged()
	OnMeasurement(m Measurement)
}

// NopListener ignores every notification
type NopListener struct{}

func (NopListener) OnUpdating()                {}
func (NopListener) OnProgress(string, float64) {}
func (NopListener) OnUpdated()                 {}
func (NopListener) OnInteraction()             {}
func (NopListener) OnOrientationChanged()      {}
func (NopListener) OnMeasurement(Measurement)  {}
