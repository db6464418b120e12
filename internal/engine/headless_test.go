package engine

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/govox/pkg/geometry"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	NopListener
	progress     []float64
	updating     int
	updated      int
	interactions int
	orientations int
	measurements []Measurement
}

func (r *recordingListener) OnUpdating()                    { r.updating++ }
func (r *recordingListener) OnUpdated()                     { r.updated++ }
func (r *recordingListener) OnInteraction()                 { r.interactions++ }
func (r *recordingListener) OnOrientationChanged()          { r.orientations++ }
func (r *recordingListener) OnProgress(_ string, p float64) { r.progress = append(r.progress, p) }
func (r *recordingListener) OnMeasurement(m Measurement) {
	r.measurements = append(r.measurements, m)
}

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
	return path
}

func TestLoadVolumeReportsProgress(t *testing.T) {
	path := writeFile(t, t.TempDir(), "head.pvm", 3*readChunk)
	h := NewHeadless(zerolog.Nop())
	l := &recordingListener{}
	h.SetListener(l)

	require.NoError(t, h.LoadVolume(path))

	assert.Equal(t, path, h.State().Volume)
	assert.Equal(t, int64(3*readChunk), h.State().BytesRead)
	assert.Equal(t, 1, l.updating)
	assert.Equal(t, 1, l.updated)
	require.NotEmpty(t, l.progress)
	assert.InDelta(t, 1.0, l.progress[len(l.progress)-1], 1e-9)
	for i := 1; i < len(l.progress); i++ {
		assert.GreaterOrEqual(t, l.progress[i], l.progress[i-1])
	}
}

func TestLoadMissingVolume(t *testing.T) {
	h := NewHeadless(zerolog.Nop())

	err := h.LoadVolume(filepath.Join(t.TempDir(), "missing.pvm"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
	assert.Empty(t, h.State().Volume)
}

func TestLoadSeries(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.dcm", 10)
	b := writeFile(t, dir, "b.dcm", 10)
	h := NewHeadless(zerolog.Nop())
	l := &recordingListener{}
	h.SetListener(l)

	require.NoError(t, h.LoadSeries([]string{a, b}))

	assert.Equal(t, []string{a, b}, h.State().Series)
	assert.Equal(t, []float64{0.5, 0.5, 1, 1}, l.progress)
	assert.Error(t, h.LoadSeries(nil))
}

func TestLoadSurfaceAndClear(t *testing.T) {
	dir := t.TempDir()
	geo := writeFile(t, dir, "mesh.geo", 5)
	vol := writeFile(t, dir, "vol.pvm", 5)
	h := NewHeadless(zerolog.Nop())

	require.NoError(t, h.LoadVolume(vol))
	require.NoError(t, h.LoadSurface(geo))
	assert.Equal(t, geo, h.State().Surface)

	h.ClearVolume()
	h.ClearSurface()
	assert.Empty(t, h.State().Volume)
	assert.Empty(t, h.State().Surface)
}

func TestGradientMagnitudeKeepsShadingPerMode(t *testing.T) {
	h := NewHeadless(zerolog.Nop())
	h.SetEmission(0.1)

	h.SetGradientMagnitude(true)
	assert.True(t, h.GradientMagnitude())
	assert.Equal(t, 0.5, h.Emission())
	assert.Equal(t, 0.5, h.Absorption())

	h.SetGradientMagnitude(false)
	assert.Equal(t, 0.1, h.Emission())
	assert.Equal(t, 0.25, h.Absorption())
}

func TestNotifications(t *testing.T) {
	h := NewHeadless(zerolog.Nop())
	l := &recordingListener{}
	h.SetListener(l)

	h.SetZoom(0.5)
	h.SetAngle(10)
	h.SetClipDistance(0)
	h.SetTiltXY(90)
	h.SetTiltYZ(0)

	assert.Equal(t, 3, l.interactions)
	assert.Equal(t, 2, l.orientations)

	m := h.Measure(geometry.NewVector3(0, 0, 0), geometry.NewVector3(3, 4, 0))
	assert.Equal(t, 5.0, m.Length)
	m = h.Measure(geometry.NewVector3(3, 4, 0), geometry.NewVector3(3, 4, 1))
	assert.Equal(t, 6.0, m.EndLength)
	assert.Len(t, l.measurements, 2)

	h.SetListener(nil)
	h.SetZoom(0.1)
	assert.Equal(t, 3, l.interactions)
}

func TestNearPlane(t *testing.T) {
	h := NewHeadless(zerolog.Nop())
	h.SetClipDistance(0.5)

	pl := h.NearPlane()
	assert.InDelta(t, -1, pl.Normal.Z, 1e-9)
	assert.InDelta(t, 0.25, pl.Point.Z, 1e-9)

	h.SetAngle(90)
	pl = h.NearPlane()
	assert.InDelta(t, -1, pl.Normal.X, 1e-9)
	assert.InDelta(t, 0, pl.Normal.Z, 1e-9)
	assert.InDelta(t, 1, math.Abs(pl.Normal.Length()), 1e-9)
}

func TestClipPlanes(t *testing.T) {
	h := NewHeadless(zerolog.Nop())
	pl := geometry.NewPlane(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))

	h.SetClipPlane(2, pl)
	h.EnableClipPlane(2, true)
	h.SetClipPlane(9, pl)
	h.EnableClipPlane(-1, true)

	assert.True(t, h.State().ClipPlanes[2].Enabled)
	assert.Equal(t, pl, h.State().ClipPlanes[2].Plane)

	h.DisableClipPlanes()
	assert.False(t, h.State().ClipPlanes[2].Enabled)
}

func TestStereoModeNames(t *testing.T) {
	assert.Equal(t, StereoAnaglyph, ParseStereoMode("anaglyph"))
	assert.Equal(t, StereoOff, ParseStereoMode("bogus"))
	assert.Equal(t, "interlaced", StereoInterlaced.String())
}

func TestStereoModesRoundTrip(t *testing.T) {
	for _, m := range StereoModes() {
		assert.Equal(t, m, ParseStereoMode(m.String()))
	}
	assert.Equal(t, "quad-buffer", StereoQuadBuffer.String())
}

func TestIsoSurface(t *testing.T) {
	h := NewHeadless(zerolog.Nop())
	rec := &recordingListener{}
	h.SetListener(rec)

	assert.ErrorIs(t, h.ExtractIsoSurface(0.5), ErrNoVolume)
	assert.False(t, h.State().IsoSurface)

	require.NoError(t, h.LoadVolume(writeFile(t, t.TempDir(), "ct.pvm", 10)))
	updated := rec.updated
	require.NoError(t, h.ExtractIsoSurface(0.3))
	s := h.State()
	assert.True(t, s.IsoSurface)
	assert.Equal(t, 0.3, s.IsoValue)
	assert.Equal(t, updated+1, rec.updated)

	h.SetShowIsoSurface(false)
	h.SetClipIsoSurface(true)
	h.SetShowPlane(true)
	s = h.State()
	assert.False(t, s.ShowIso)
	assert.True(t, s.ClipIso)
	assert.True(t, s.ShowPlane)

	h.ClearIsoSurface()
	assert.False(t, h.State().IsoSurface)

	require.NoError(t, h.ExtractIsoSurface(0.3))
	h.ClearVolume()
	assert.False(t, h.State().IsoSurface)
}
