package control

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/govox/internal/config"
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/pkg/drop"
	"github.com/philipparndt/govox/pkg/geometry"
	"github.com/philipparndt/govox/pkg/idle"
	"github.com/philipparndt/govox/pkg/slider"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	sliders     map[slider.Control]int
	toggles     map[Toggle]bool
	sampling    Sampling
	stereo      engine.StereoMode
	label       string
	status      []string
	repaints    int
	redraws     int
	processed   int
	placeholder bool
	grabbed     []string
	grabErr     error
}

func newFakeView() *fakeView {
	return &fakeView{
		sliders:     map[slider.Control]int{},
		toggles:     map[Toggle]bool{},
		placeholder: true,
	}
}

func (v *fakeView) ShowStatus(text string)              { v.status = append(v.status, text) }
func (v *fakeView) Repaint()                            { v.repaints++ }
func (v *fakeView) Redraw()                             { v.redraws++ }
func (v *fakeView) ProcessEvents()                      { v.processed++ }
func (v *fakeView) SetSlider(c slider.Control, raw int) { v.sliders[c] = raw }
func (v *fakeView) SetToggle(t Toggle, on bool)         { v.toggles[t] = on }
func (v *fakeView) SetSampling(s Sampling)              { v.sampling = s }
func (v *fakeView) SetStereo(m engine.StereoMode)       { v.stereo = m }
func (v *fakeView) SetLabel(text string)                { v.label = text }
func (v *fakeView) RemovePlaceholder()                  { v.placeholder = false }

func (v *fakeView) Grab(path string) error {
	if v.grabErr != nil {
		return v.grabErr
	}
	v.grabbed = append(v.grabbed, path)
	return nil
}

func (v *fakeView) lastStatus() string {
	if len(v.status) == 0 {
		return ""
	}
	return v.status[len(v.status)-1]
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	ctl   *Controller
	eng   *engine.Headless
	view  *fakeView
	clock *clock
	dir   string
}

func newFixture(t *testing.T, mutate ...func(*config.Config)) *fixture {
	t.Helper()
	dir := t.TempDir()
	teaser := writeFile(t, dir, "Drop.pvm", 10)

	cfg := config.DefaultConfig()
	cfg.Teaser = teaser
	for _, m := range mutate {
		m(&cfg)
	}

	clk := &clock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	eng := engine.NewHeadless(zerolog.Nop())
	view := newFakeView()
	ctl := New(eng, view, cfg, zerolog.Nop(), WithClock(clk.now))
	ctl.Start()
	return &fixture{ctl: ctl, eng: eng, view: view, clock: clk, dir: dir}
}

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func TestStartLoadsTeaserAndDefaults(t *testing.T) {
	f := newFixture(t)

	s := f.eng.State()
	assert.Equal(t, f.ctl.Config().Teaser, s.Volume)
	assert.True(t, f.ctl.HasTeaser())
	assert.True(t, f.view.placeholder)
	assert.Equal(t, 30.0, s.Omega)
	assert.Equal(t, 1.0, s.ClipDistance)
	assert.InDelta(t, 0.25, s.Emission, 1e-9)
	assert.Equal(t, 400, f.view.sliders[slider.Emission])
	assert.True(t, f.view.toggles[Rotate])
	assert.Equal(t, RegularSampling, f.view.sampling)
}

func TestStartWithMissingTeaser(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Teaser = "/does/not/exist.pvm" })

	assert.Empty(t, f.eng.State().Volume)
	assert.True(t, f.ctl.HasTeaser())
}

func TestSliderChangedForwardsEngineUnits(t *testing.T) {
	f := newFixture(t)

	f.ctl.SliderChanged(slider.Zoom, 800)
	f.ctl.SliderChanged(slider.Clip, 400)
	f.ctl.SliderChanged(slider.Rotation, -160)
	f.ctl.SliderChanged(slider.Tilt, 720)
	f.ctl.SliderChanged(slider.Emission, 1600)
	f.ctl.SliderChanged(slider.Absorption, 0)

	s := f.eng.State()
	assert.InDelta(t, 0.5, s.Zoom, 1e-9)
	assert.InDelta(t, 0.5, s.ClipDistance, 1e-9)
	assert.InDelta(t, -10, s.Angle, 1e-9)
	assert.InDelta(t, 45, s.Tilt, 1e-9)
	assert.InDelta(t, 1, s.Emission, 1e-9)
	assert.InDelta(t, 0, s.Absorption, 1e-9)
}

func TestSliderChangedClampsToRange(t *testing.T) {
	f := newFixture(t)

	f.ctl.SliderChanged(slider.Tilt, 10000)

	assert.Equal(t, 90*slider.Factor, f.ctl.Slider(slider.Tilt).Value)
	assert.Equal(t, 90*slider.Factor, f.view.sliders[slider.Tilt])
	assert.InDelta(t, 90, f.eng.State().Tilt, 1e-9)
}

func TestStepSlider(t *testing.T) {
	f := newFixture(t)

	f.ctl.StepSlider(slider.Rotation, 3)
	assert.InDelta(t, 3, f.eng.State().Angle, 1e-9)

	f.ctl.PageSlider(slider.Rotation, -1)
	assert.InDelta(t, -33, f.eng.State().Angle, 1e-9)
	assert.Equal(t, -33*slider.Factor, f.view.sliders[slider.Rotation])
}

func TestTackResetsClipSlider(t *testing.T) {
	f := newFixture(t)

	f.ctl.SliderChanged(slider.Clip, 800)
	require.InDelta(t, 0, f.eng.State().ClipDistance, 1e-9)

	assert.False(t, f.ctl.Tack())

	s := f.eng.State()
	assert.True(t, s.ClipPlanes[0].Enabled)
	assert.Equal(t, 0, f.view.sliders[slider.Clip])
	assert.Equal(t, 1.0, s.ClipDistance)
}

func TestSixthTackClearsAll(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 5; i++ {
		assert.False(t, f.ctl.Tack())
	}
	assert.True(t, f.ctl.Tack())

	for i, p := range f.eng.State().ClipPlanes {
		assert.False(t, p.Enabled, "plane %d", i)
	}
	for _, s := range f.ctl.ClipPlanes() {
		assert.False(t, s.Enabled)
	}
}

func TestFlipToggles(t *testing.T) {
	f := newFixture(t)

	f.ctl.SetToggle(FlipXYPlus, true)
	assert.Equal(t, 90.0, f.eng.State().TiltXY)

	f.ctl.SetToggle(FlipYZMinus, true)
	s := f.eng.State()
	assert.Equal(t, 180.0, s.TiltXY)
	assert.Equal(t, 0.0, s.TiltYZ)

	f.ctl.SetToggle(FlipXYPlus, false)
	s = f.eng.State()
	assert.Equal(t, 0.0, s.TiltXY)
	assert.Equal(t, -90.0, s.TiltYZ)
	assert.True(t, f.ctl.Flips().YZMinus)
}

func TestRotationToggles(t *testing.T) {
	f := newFixture(t)

	f.ctl.SetToggle(Reverse, true)
	assert.Equal(t, -30.0, f.eng.State().Omega)

	f.ctl.SetToggle(Rotate, false)
	assert.Equal(t, 0.0, f.eng.State().Omega)
	assert.False(t, f.ctl.Rotating())

	f.ctl.SetToggle(Rotate, true)
	assert.Equal(t, -30.0, f.eng.State().Omega)

	f.ctl.DisableRotation()
	assert.Equal(t, 0.0, f.eng.State().Omega)
	assert.False(t, f.view.toggles[Rotate])
}

func TestGradientMagnitudeResyncsSliders(t *testing.T) {
	f := newFixture(t)

	f.ctl.SetToggle(GradientMagnitude, true)
	assert.Equal(t, 800, f.view.sliders[slider.Emission])
	assert.Equal(t, 800, f.view.sliders[slider.Absorption])

	f.ctl.SliderChanged(slider.Emission, 1200)
	f.ctl.SetToggle(GradientMagnitude, false)
	assert.Equal(t, 400, f.view.sliders[slider.Emission])

	f.ctl.SetToggle(GradientMagnitude, true)
	assert.Equal(t, 1200, f.view.sliders[slider.Emission])
	assert.InDelta(t, 0.75, f.eng.State().Emission, 1e-9)
}

func TestSamplingAndInverse(t *testing.T) {
	f := newFixture(t)

	f.ctl.SetSampling(Oversampling)
	assert.Equal(t, 2.0, f.eng.State().Oversampling)
	f.ctl.SetSampling(Undersampling)
	assert.Equal(t, 0.5, f.eng.State().Oversampling)
	assert.Equal(t, Undersampling, f.ctl.Sampling())

	f.ctl.SetToggle(InverseMode, true)
	assert.True(t, f.eng.State().InverseMode)
}

func TestDemoControls(t *testing.T) {
	f := newFixture(t)

	f.ctl.ClipDemo(0.25)
	assert.InDelta(t, 0.5, f.eng.State().ClipDistance, 1e-9)
	f.ctl.ClipDemo(2)
	assert.InDelta(t, -1, f.eng.State().ClipDistance, 1e-9)

	f.ctl.ZoomDemo(0.3)
	assert.InDelta(t, 0.3, f.eng.State().Zoom, 1e-9)
}

func TestOpenVolumeRemovesPlaceholderOnce(t *testing.T) {
	var loaded [][]string
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Teaser = ""
	view := newFakeView()
	eng := engine.NewHeadless(zerolog.Nop())
	ctl := New(eng, view, cfg, zerolog.Nop(), WithLoadHook(func(p []string) { loaded = append(loaded, p) }))
	ctl.Start()

	vol := writeFile(t, dir, "head.pvm", 100)
	require.NoError(t, ctl.Open([]string{vol}))

	assert.False(t, view.placeholder)
	assert.False(t, ctl.HasTeaser())
	assert.Equal(t, vol, eng.State().Volume)
	assert.Equal(t, "head.pvm", view.label)
	assert.Equal(t, [][]string{{vol}}, loaded)
	assert.Equal(t, drop.Volume, ctl.Loaded().Kind)
}

func TestOpenSurfaceClearsTeaserVolume(t *testing.T) {
	f := newFixture(t)
	geo := writeFile(t, f.dir, "mesh.GEO", 10)

	require.NoError(t, f.ctl.Open([]string{geo}))

	s := f.eng.State()
	assert.Empty(t, s.Volume)
	assert.Equal(t, geo, s.Surface)
	assert.False(t, f.view.placeholder)
}

func TestOpenSeriesLabelsCommonPrefix(t *testing.T) {
	f := newFixture(t)
	a := writeFile(t, f.dir, "slice_001.raw", 10)
	b := writeFile(t, f.dir, "slice_002.raw", 10)

	require.NoError(t, f.ctl.Open([]string{a, b}))

	assert.Equal(t, []string{a, b}, f.eng.State().Series)
	assert.Equal(t, filepath.Join(f.dir, "slice_00"), f.view.label)
}

func TestOpenEmptyIsNoop(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, f.ctl.Open(nil))
	assert.NoError(t, f.ctl.Drop([]string{"https://example.com/a.pvm"}))
	assert.True(t, f.ctl.HasTeaser())
}

func TestOpenFailureKeepsTeaser(t *testing.T) {
	f := newFixture(t)

	err := f.ctl.Open([]string{filepath.Join(f.dir, "missing.pvm")})

	require.Error(t, err)
	assert.True(t, f.ctl.HasTeaser())
	assert.True(t, f.view.placeholder)
	assert.Contains(t, f.view.lastStatus(), "failed to load volume")
}

func TestDropFileURL(t *testing.T) {
	f := newFixture(t)
	vol := writeFile(t, f.dir, "ct.dcm", 10)

	require.NoError(t, f.ctl.Drop([]string{"file://" + vol}))
	assert.Equal(t, vol, f.eng.State().Volume)

	require.NoError(t, f.ctl.Drop([]string{"https://example.com/x", "file://" + vol}))
	assert.Equal(t, []string{vol}, f.eng.State().Series)
}

func TestReload(t *testing.T) {
	f := newFixture(t)
	assert.NoError(t, f.ctl.Reload())

	vol := writeFile(t, f.dir, "ct.pvm", 10)
	require.NoError(t, f.ctl.Open([]string{vol}))
	before := f.eng.State().BytesRead

	require.NoError(t, os.WriteFile(vol, make([]byte, 30), 0o644))
	require.NoError(t, f.ctl.Reload())

	assert.Equal(t, before+30, f.eng.State().BytesRead)
	assert.False(t, f.ctl.HasTeaser())
}

func TestProgressIsThrottled(t *testing.T) {
	f := newFixture(t)
	redraws := f.view.redraws

	f.ctl.OnProgress("loading", 0.5)
	assert.Equal(t, "loading: 50%", f.view.lastStatus())
	assert.Equal(t, redraws, f.view.redraws)

	f.clock.advance(50 * time.Millisecond)
	f.ctl.OnProgress("loading", 0.6)
	assert.Equal(t, redraws+1, f.view.redraws)
	assert.Equal(t, 1, f.view.processed)
}

func TestInteractionsOnlyRequestRepaint(t *testing.T) {
	f := newFixture(t)
	repaints := f.view.repaints

	f.ctl.SetToggle(FlipXYPlus, true)
	f.ctl.SetToggle(FlipYZPlus, true)
	f.ctl.ResetDefaults()

	assert.Greater(t, f.view.repaints, repaints)
	assert.Equal(t, 0, f.view.redraws)
	assert.Equal(t, 0, f.view.processed)
}

func TestMeasurementStatus(t *testing.T) {
	f := newFixture(t)

	f.eng.Measure(geometry.NewVector3(0, 0, 0), geometry.NewVector3(3, 4, 0))

	assert.Equal(t, "length 5.00, total 5.00 at (3.00, 4.00, 0.00)", f.view.lastStatus())
}

func TestIdleResetsToDefaults(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.MaxIdle = 60 })

	f.ctl.SliderChanged(slider.Zoom, 1600)
	f.ctl.SetToggle(FlipXYPlus, true)
	f.ctl.Tack()
	assert.True(t, f.ctl.HandleEvent(idle.Key("a")))

	f.clock.advance(30 * time.Second)
	assert.False(t, f.ctl.HandleEvent(idle.Move(1, 1)))
	assert.False(t, f.ctl.CheckIdle())

	f.clock.advance(30 * time.Second)
	assert.True(t, f.ctl.CheckIdle())
	assert.True(t, f.ctl.Idling())

	s := f.eng.State()
	assert.Equal(t, 0.0, s.Zoom)
	assert.Equal(t, 0.0, s.TiltXY)
	assert.False(t, s.ClipPlanes[0].Enabled)
	assert.Equal(t, 0, f.view.sliders[slider.Zoom])
	assert.False(t, f.view.toggles[FlipXYPlus])

	assert.False(t, f.ctl.CheckIdle())
	f.ctl.HandleEvent(idle.Button(1, 0, 0))
	assert.False(t, f.ctl.Idling())
}

func TestIdleResetRestoresRotation(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.MaxIdle = 60
		c.Defaults.AnimTilt = 20
		c.Defaults.AnimZoom = 0.4
	})

	f.ctl.DisableRotation()
	f.ctl.SetToggle(Reverse, true)
	f.eng.SetAnimatedTilt(0, 0)
	f.eng.SetAnimatedZoom(0, 0)
	require.Equal(t, 0.0, f.eng.State().Omega)

	f.clock.advance(time.Minute)
	require.True(t, f.ctl.CheckIdle())

	s := f.eng.State()
	assert.Equal(t, 30.0, s.Omega)
	assert.True(t, f.ctl.Rotating())
	assert.True(t, f.view.toggles[Rotate])
	assert.False(t, f.view.toggles[Reverse])
	assert.Equal(t, 20.0, s.AnimTilt)
	assert.Equal(t, 60.0, s.AnimOmega)
	assert.Equal(t, 0.4, s.AnimZoom)
	assert.InDelta(t, 1.0/60, s.AnimFreq, 1e-12)
}

func TestIdleDisabled(t *testing.T) {
	f := newFixture(t)

	f.clock.advance(time.Hour)
	assert.False(t, f.ctl.CheckIdle())

	f.ctl.SetMaxIdle(10)
	assert.True(t, f.ctl.CheckIdle())
}

func TestResetDefaultsAppliesBundle(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Defaults.Angle = 45
		c.Defaults.Zoom = 0.5
		c.Defaults.Clip = 0
		c.Defaults.GradMag = true
		c.Defaults.Emission = 0.75
		c.Defaults.Stereo = "anaglyph"
		c.Defaults.Hue = 0.3
	})

	f.ctl.SetSampling(Oversampling)
	f.ctl.SetToggle(InverseMode, true)
	f.ctl.ResetDefaults()

	s := f.eng.State()
	assert.InDelta(t, 45, s.Angle, 1e-9)
	assert.InDelta(t, 0.5, s.Zoom, 1e-9)
	assert.InDelta(t, 0, s.ClipDistance, 1e-9)
	assert.True(t, s.GradMag)
	assert.InDelta(t, 0.75, s.Emission, 1e-9)
	assert.Equal(t, engine.StereoAnaglyph, s.StereoMode)
	assert.Equal(t, 0.3, s.Hue)
	assert.Equal(t, 1.0, s.Oversampling)
	assert.False(t, s.InverseMode)
	assert.Equal(t, 45*slider.Factor, f.view.sliders[slider.Rotation])
	assert.Equal(t, 800, f.view.sliders[slider.Clip])
	assert.True(t, f.view.toggles[GradientMagnitude])
}

func TestResetInteractions(t *testing.T) {
	f := newFixture(t)

	f.ctl.SliderChanged(slider.Emission, 1600)
	f.ctl.SetToggle(FlipYZPlus, true)
	f.ctl.Tack()
	f.ctl.ResetInteractions()

	assert.Equal(t, 400, f.ctl.Slider(slider.Emission).Value)
	assert.False(t, f.ctl.Flips().YZPlus)
	assert.Equal(t, 0.0, f.eng.State().TiltYZ)
	assert.False(t, f.eng.State().ClipPlanes[0].Enabled)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "", Label(drop.Decision{}))
	assert.Equal(t, "a.pvm", Label(drop.Decision{Kind: drop.Volume, Paths: []string{"/x/a.pvm"}}))
	assert.Equal(t, "series", Label(drop.Decision{Kind: drop.Series, Paths: []string{"a", "b"}}))
}

func TestToggleNames(t *testing.T) {
	assert.Equal(t, "gradmag", GradientMagnitude.String())
	assert.Equal(t, "unknown", Toggle(42).String())
	_, ok := Rotate.Flip()
	assert.False(t, ok)
	assert.Equal(t, 2.0, Oversampling.Factor())
}

func TestUnload(t *testing.T) {
	f := newFixture(t)
	geo := writeFile(t, f.dir, "mesh.geo", 10)
	require.NoError(t, f.ctl.Open([]string{geo}))

	f.ctl.Unload()

	s := f.eng.State()
	assert.Empty(t, s.Surface)
	assert.Empty(t, s.Volume)
	assert.Empty(t, f.view.label)
	assert.False(t, f.ctl.HasTeaser())
	assert.NoError(t, f.ctl.Reload())
	assert.Empty(t, f.eng.State().Surface)
}

func TestIsoSurfaceCommands(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Teaser = ""
		c.IsoValue = 0.3
	})

	err := f.ctl.ExtractIsoSurface()
	assert.ErrorIs(t, err, engine.ErrNoVolume)
	assert.Contains(t, f.view.lastStatus(), "failed to extract iso surface")

	vol := writeFile(t, f.dir, "ct.pvm", 10)
	require.NoError(t, f.ctl.Open([]string{vol}))
	require.NoError(t, f.ctl.ExtractIsoSurface())
	s := f.eng.State()
	assert.True(t, s.IsoSurface)
	assert.Equal(t, 0.3, s.IsoValue)

	f.ctl.ClearIsoSurface()
	assert.False(t, f.eng.State().IsoSurface)
}

func TestPlaneAndIsoToggles(t *testing.T) {
	f := newFixture(t)

	s := f.eng.State()
	assert.False(t, s.ShowPlane)
	assert.True(t, s.ShowIso)
	assert.False(t, s.ClipIso)
	assert.True(t, f.view.toggles[ShowIso])

	f.ctl.SetToggle(ShowPlane, true)
	f.ctl.SetToggle(ShowIso, false)
	f.ctl.SetToggle(ClipIso, true)
	s = f.eng.State()
	assert.True(t, s.ShowPlane)
	assert.False(t, s.ShowIso)
	assert.True(t, s.ClipIso)

	f.ctl.ResetDefaults()
	s = f.eng.State()
	assert.False(t, s.ShowPlane)
	assert.True(t, s.ShowIso)
	assert.False(t, s.ClipIso)
	assert.False(t, f.view.toggles[ClipIso])
}

func TestStereoSelection(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Defaults.Stereo = "interlaced" })
	assert.Equal(t, engine.StereoInterlaced, f.ctl.Stereo())
	assert.Equal(t, engine.StereoInterlaced, f.view.stereo)

	f.ctl.SetStereo(engine.StereoQuadBuffer)
	assert.Equal(t, engine.StereoQuadBuffer, f.eng.State().StereoMode)
	assert.Equal(t, engine.StereoQuadBuffer, f.ctl.Stereo())

	f.ctl.ResetDefaults()
	assert.Equal(t, engine.StereoInterlaced, f.eng.State().StereoMode)
	assert.Equal(t, engine.StereoInterlaced, f.view.stereo)
}

func TestGrab(t *testing.T) {
	shots := filepath.Join(t.TempDir(), "shots")
	f := newFixture(t, func(c *config.Config) { c.GrabDir = shots })

	path, err := f.ctl.Grab()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(shots, "govox-20240101-120000.png"), path)
	assert.DirExists(t, shots)
	assert.Equal(t, []string{path}, f.view.grabbed)
	assert.Equal(t, "saved "+path, f.view.lastStatus())

	f.view.grabErr = errors.New("no frame")
	_, err = f.ctl.Grab()
	require.Error(t, err)
	assert.Contains(t, f.view.lastStatus(), "failed to grab window: no frame")
}
