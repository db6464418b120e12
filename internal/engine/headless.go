package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/philipparndt/govox/pkg/geometry"
	"github.com/rs/zerolog"
)

const readChunk = 64 * 1024

// ErrNoVolume is returned by operations that need a loaded volume
var ErrNoVolume = errors.New("no volume loaded")

// ClipPlanes is the number of user clip planes the headless engine supports
const ClipPlanes = 6

// ClipPlane is the engine-side state of one user clip plane
type ClipPlane struct {
	Plane   geometry.Plane
	Enabled bool
}

// shading is the emission/absorption pair of one shading mode
type shading struct {
	emission   float64
	absorption float64
}

// State is a snapshot of everything the headless engine has been told
type State struct {
	Volume       string
	Series       []string
	Surface      string
	Angle        float64
	Omega        float64
	Tilt         float64
	TiltXY       float64
	TiltYZ       float64
	AnimTilt     float64
	AnimOmega    float64
	Zoom         float64
	AnimZoom     float64
	AnimFreq     float64
	ClipDistance float64
	ClipPlanes   [ClipPlanes]ClipPlane
	ShowPlane    bool
	TFCenter     float64
	TFSize       float64
	TFInverse    bool
	Emission     float64
	Absorption   float64
	Hue          float64
	Oversampling float64
	InverseMode  bool
	GradMag      bool
	IsoSurface   bool
	IsoValue     float64
	ShowIso      bool
	ClipIso      bool
	StereoMode   StereoMode
	StereoBase   float64
	StereoFocus  float64
	BytesRead    int64
}

// Headless is an in-memory engine. It does not render; it keeps the state
// a renderer would have, reads loaded files to report progress, and sends
// the notifications a renderer sends.
type Headless struct {
	state    State
	modes    [2]shading // indexed by gradient magnitude off/on
	listener Listener
	measured float64
	log      zerolog.Logger
}

// NewHeadless creates an engine with nothing loaded
func NewHeadless(log zerolog.Logger) *Headless {
	h := &Headless{
		listener: NopListener{},
		log:      log,
		modes: [2]shading{
			{emission: 0.25, absorption: 0.25},
			{emission: 0.5, absorption: 0.5},
		},
	}
	h.state.ClipDistance = 1
	h.state.Oversampling = 1
	h.state.TFSize = 1
	h.state.TFCenter = 0.5
	h.state.StereoBase = 1
	h.state.StereoFocus = 1
	h.state.ShowIso = true
	h.syncShading()
	return h
}

// SetListener registers the receiver of notifications
func (h *Headless) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	h.listener = l
}

// State returns a snapshot of the engine state
func (h *Headless) State() State {
	s := h.state
	s.Series = append([]string(nil), h.state.Series...)
	return s
}

// LoadVolume reads a single volume file
func (h *Headless) LoadVolume(path string) error {
	h.listener.OnUpdating()
	defer h.listener.OnUpdated()

	n, err := h.read(path, "loading "+filepath.Base(path), 0, 1)
	if err != nil {
		return err
	}
	h.state.Volume = path
	h.state.Series = nil
	h.state.BytesRead += n
	h.log.Debug().Str("path", path).Int64("bytes", n).Msg("volume loaded")
	return nil
}

// LoadSeries reads every slice of a series in order
func (h *Headless) LoadSeries(paths []string) error {
	if len(paths) == 0 {
		return errors.New("empty series")
	}
	h.listener.OnUpdating()
	defer h.listener.OnUpdated()

	var total int64
	for i, p := range paths {
		n, err := h.read(p, "loading series", i, len(paths))
		if err != nil {
			return err
		}
		total += n
	}
	h.state.Volume = ""
	h.state.Series = append([]string(nil), paths...)
	h.state.BytesRead += total
	h.log.Debug().Int("slices", len(paths)).Int64("bytes", total).Msg("series loaded")
	return nil
}

// LoadSurface reads a surface mesh file
func (h *Headless) LoadSurface(path string) error {
	h.listener.OnUpdating()
	defer h.listener.OnUpdated()

	n, err := h.read(path, "loading "+filepath.Base(path), 0, 1)
	if err != nil {
		return err
	}
	h.state.Surface = path
	h.state.BytesRead += n
	h.log.Debug().Str("path", path).Int64("bytes", n).Msg("surface loaded")
	return nil
}

// read consumes a file in chunks and reports progress as part index of
// parts; it returns the number of bytes read.
func (h *Headless) read(path, info string, index, parts int) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}

	size := fi.Size()
	buf := make([]byte, readChunk)
	var read int64
	for {
		n, err := f.Read(buf)
		read += int64(n)
		if size > 0 {
			frac := (float64(index) + float64(read)/float64(size)) / float64(parts)
			h.listener.OnProgress(info, frac)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return read, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	return read, nil
}

// ClearVolume unloads the volume or series and its iso surface
func (h *Headless) ClearVolume() {
	h.state.Volume = ""
	h.state.Series = nil
	h.state.IsoSurface = false
	h.log.Debug().Msg("volume cleared")
}

// ClearSurface unloads the surface
func (h *Headless) ClearSurface() {
	h.state.Surface = ""
	h.log.Debug().Msg("surface cleared")
}

func (h *Headless) SetAngle(deg float64) {
	h.state.Angle = deg
	h.listener.OnInteraction()
}

func (h *Headless) SetRotationSpeed(omega float64) {
	h.state.Omega = omega
}

func (h *Headless) SetTilt(deg float64) {
	h.state.Tilt = deg
	h.listener.OnInteraction()
}

func (h *Headless) SetTiltXY(deg float64) {
	h.state.TiltXY = deg
	h.listener.OnOrientationChanged()
}

func (h *Headless) SetTiltYZ(deg float64) {
	h.state.TiltYZ = deg
	h.listener.OnOrientationChanged()
}

func (h *Headless) SetAnimatedTilt(target, omega float64) {
	h.state.AnimTilt = target
	h.state.AnimOmega = omega
}

func (h *Headless) SetZoom(ratio float64) {
	h.state.Zoom = ratio
	h.listener.OnInteraction()
}

func (h *Headless) SetAnimatedZoom(target, freq float64) {
	h.state.AnimZoom = target
	h.state.AnimFreq = freq
}

func (h *Headless) SetClipDistance(ratio float64) {
	h.state.ClipDistance = ratio
	h.listener.OnInteraction()
}

// NearPlane returns the plane at the current clip distance facing away
// from the viewer, in volume coordinates.
func (h *Headless) NearPlane() geometry.Plane {
	view := geometry.NewVector3(0, 0, -1).
		RotateX(h.state.Tilt).
		RotateY(h.state.Angle)
	point := view.Mul(-0.5 * h.state.ClipDistance)
	return geometry.NewPlane(point, view)
}

func (h *Headless) SetClipPlane(index int, plane geometry.Plane) {
	if index < 0 || index >= ClipPlanes {
		h.log.Warn().Int("index", index).Msg("clip plane index out of range")
		return
	}
	h.state.ClipPlanes[index].Plane = plane
}

func (h *Headless) EnableClipPlane(index int, on bool) {
	if index < 0 || index >= ClipPlanes {
		return
	}
	h.state.ClipPlanes[index].Enabled = on
}

func (h *Headless) DisableClipPlanes() {
	for i := range h.state.ClipPlanes {
		h.state.ClipPlanes[i].Enabled = false
	}
}

func (h *Headless) SetShowPlane(on bool) {
	h.state.ShowPlane = on
}

// ExtractIsoSurface extracts the surface at value from the loaded volume,
// replacing any earlier one
func (h *Headless) ExtractIsoSurface(value float64) error {
	if h.state.Volume == "" && len(h.state.Series) == 0 {
		return ErrNoVolume
	}
	h.listener.OnUpdating()
	defer h.listener.OnUpdated()

	h.listener.OnProgress("extracting iso surface", 1)
	h.state.IsoSurface = true
	h.state.IsoValue = value
	h.log.Debug().Float64("isovalue", value).Msg("iso surface extracted")
	return nil
}

func (h *Headless) ClearIsoSurface() {
	h.state.IsoSurface = false
	h.log.Debug().Msg("iso surface cleared")
}

func (h *Headless) SetShowIsoSurface(on bool) {
	h.state.ShowIso = on
}

func (h *Headless) SetClipIsoSurface(on bool) {
	h.state.ClipIso = on
}

func (h *Headless) SetTransferFunction(center, size float64, inverse bool) {
	h.state.TFCenter = center
	h.state.TFSize = size
	h.state.TFInverse = inverse
}

// SetEmission sets the emission of the active shading mode
func (h *Headless) SetEmission(ratio float64) {
	h.modes[h.mode()].emission = ratio
	h.syncShading()
	h.listener.OnInteraction()
}

func (h *Headless) Emission() float64 {
	return h.state.Emission
}

// SetAbsorption sets the absorption of the active shading mode
func (h *Headless) SetAbsorption(ratio float64) {
	h.modes[h.mode()].absorption = ratio
	h.syncShading()
	h.listener.OnInteraction()
}

func (h *Headless) Absorption() float64 {
	return h.state.Absorption
}

func (h *Headless) SetColorHue(hue float64) {
	h.state.Hue = hue
}

func (h *Headless) SetOversampling(factor float64) {
	h.state.Oversampling = factor
}

func (h *Headless) SetInverseMode(on bool) {
	h.state.InverseMode = on
}

// SetGradientMagnitude switches shading modes; each mode keeps its own
// emission and absorption.
func (h *Headless) SetGradientMagnitude(on bool) {
	h.state.GradMag = on
	h.syncShading()
}

func (h *Headless) GradientMagnitude() bool {
	return h.state.GradMag
}

func (h *Headless) SetStereoMode(mode StereoMode) {
	h.state.StereoMode = mode
}

func (h *Headless) SetStereoParams(base, focus float64) {
	h.state.StereoBase = base
	h.state.StereoFocus = focus
}

// Measure reports a measurement to the listener, as a renderer does after
// the user picks the next point of a measuring chain. EndLength is the
// length of the whole chain so far.
func (h *Headless) Measure(a, b geometry.Vector3) Measurement {
	length := b.Sub(a).Length()
	h.measured += length
	m := Measurement{Point: b, Length: length, EndLength: h.measured}
	h.listener.OnMeasurement(m)
	return m
}

func (h *Headless) mode() int {
	if h.state.GradMag {
		return 1
	}
	return 0
}

func (h *Headless) syncShading() {
	m := h.modes[h.mode()]
	h.state.Emission = m.emission
	h.state.Absorption = m.absorption
}
