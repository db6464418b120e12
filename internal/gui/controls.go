package gui

import (
	"os"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/govox/internal/control"
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/pkg/idle"
	"github.com/philipparndt/govox/pkg/slider"
)

var sliderLabels = []struct {
	control slider.Control
	label   string
}{
	{slider.Clip, "Clip"},
	{slider.Zoom, "Zoom"},
	{slider.Rotation, "Rotation"},
	{slider.Tilt, "Tilt"},
	{slider.Emission, "Emission"},
	{slider.Absorption, "Absorption"},
}

var toggleLabels = []struct {
	toggle control.Toggle
	label  string
}{
	{control.Rotate, "Rotate"},
	{control.Reverse, "Reverse"},
	{control.InverseMode, "Inverse mode"},
	{control.GradientMagnitude, "Gradient magnitude"},
	{control.FlipXYPlus, "Flip +XY"},
	{control.FlipXYMinus, "Flip -XY"},
	{control.FlipYZPlus, "Flip +YZ"},
	{control.FlipYZMinus, "Flip -YZ"},
	{control.ShowPlane, "Show plane"},
	{control.ShowIso, "Show iso surface"},
	{control.ClipIso, "Clip iso surface"},
}

var samplingOptions = []string{"Undersampling", "Regular", "Oversampling"}

var samplingByName = map[string]control.Sampling{
	"Undersampling": control.Undersampling,
	"Regular":       control.RegularSampling,
	"Oversampling":  control.Oversampling,
}

var stereoOptions = map[engine.StereoMode]string{
	engine.StereoOff:        "Stereo off",
	engine.StereoAnaglyph:   "Anaglyph",
	engine.StereoInterlaced: "Interlaced",
	engine.StereoQuadBuffer: "Quad buffer",
}

func stereoNames() []string {
	names := make([]string, 0, len(stereoOptions))
	for _, m := range engine.StereoModes() {
		names = append(names, stereoOptions[m])
	}
	return names
}

func stereoByName(name string) (engine.StereoMode, bool) {
	for m, n := range stereoOptions {
		if n == name {
			return m, true
		}
	}
	return engine.StereoOff, false
}

func (g *GUI) buildWidgets() {
	defaults := slider.Defaults()
	for _, sl := range sliderLabels {
		c := sl.control
		d := defaults[c]
		s := widget.NewSlider(float64(d.Min), float64(d.Max))
		s.Step = float64(d.SingleStep)
		s.Value = float64(d.Value)
		s.OnChanged = func(v float64) {
			if g.syncing {
				return
			}
			g.activity()
			g.ctl.SliderChanged(c, int(v))
		}
		g.sliders[c] = s
	}

	for _, tl := range toggleLabels {
		t := tl.toggle
		g.checks[t] = widget.NewCheck(tl.label, func(on bool) {
			if g.syncing {
				return
			}
			g.activity()
			g.ctl.SetToggle(t, on)
		})
	}

	g.sampling = widget.NewRadioGroup(samplingOptions, func(selected string) {
		if g.syncing {
			return
		}
		s, ok := samplingByName[selected]
		if !ok {
			return
		}
		g.activity()
		g.ctl.SetSampling(s)
	})
	g.sampling.Horizontal = true

	g.stereo = widget.NewRadioGroup(stereoNames(), func(selected string) {
		if g.syncing {
			return
		}
		m, ok := stereoByName(selected)
		if !ok {
			return
		}
		g.activity()
		g.ctl.SetStereo(m)
	})
	g.stereo.Horizontal = true

	g.label = widget.NewLabel("-")
	g.label.TextStyle = fyne.TextStyle{Bold: true}
	g.status = widget.NewLabel("")
	g.state = widget.NewLabel("")
	g.placeholder = widget.NewLabel("Drop a volume, a series or a .geo surface here")
	g.placeholder.Alignment = fyne.TextAlignCenter
}

func (g *GUI) layout() fyne.CanvasObject {
	form := widget.NewForm()
	for _, sl := range sliderLabels {
		form.Append(sl.label, g.sliders[sl.control])
	}

	clipDemo := widget.NewSlider(0, 1)
	clipDemo.Step = 0.01
	clipDemo.OnChanged = func(v float64) {
		g.activity()
		g.ctl.ClipDemo(v)
	}
	zoomDemo := widget.NewSlider(0, 1)
	zoomDemo.Step = 0.01
	zoomDemo.OnChanged = func(v float64) {
		g.activity()
		g.ctl.ZoomDemo(v)
	}
	form.Append("Clip sweep", clipDemo)
	form.Append("Zoom sweep", zoomDemo)

	toggles := container.NewGridWithColumns(2)
	for _, tl := range toggleLabels {
		toggles.Add(g.checks[tl.toggle])
	}

	buttons := container.NewGridWithColumns(2,
		widget.NewButton("Open File", g.showFileDialog),
		widget.NewButton("Open Series", g.showSeriesDialog),
		widget.NewButton("Tack Clip Plane", func() {
			g.activity()
			g.ctl.Tack()
		}),
		widget.NewButton("Clear Clip Planes", func() {
			g.activity()
			g.ctl.ClearPlanes()
		}),
		widget.NewButton("Reset", func() {
			g.activity()
			g.ctl.ResetInteractions()
		}),
		widget.NewButton("Defaults", func() {
			g.activity()
			g.ctl.ResetDefaults()
		}),
		widget.NewButton("Extract Iso Surface", g.extractIso),
		widget.NewButton("Clear Iso Surface", func() {
			g.activity()
			g.ctl.ClearIsoSurface()
		}),
		widget.NewButton("Grab Window", g.grab),
		widget.NewButton("Unload", func() {
			g.activity()
			g.ctl.Unload()
		}),
		widget.NewButton("Quit", func() {
			fyne.CurrentApp().Quit()
		}),
	)

	panel := container.NewVBox(
		g.label,
		widget.NewSeparator(),
		form,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		toggles,
		g.sampling,
		g.stereo,
		widget.NewSeparator(),
		buttons,
	)
	panelScroll := container.NewVScroll(panel)
	panelScroll.SetMinSize(fyne.NewSize(360, 0))

	center := container.NewCenter(container.NewVBox(g.placeholder, g.state))

	return container.NewBorder(
		nil,         // top
		g.status,    // bottom
		nil,         // left
		panelScroll, // right
		center,      // center
	)
}

// activity reports a widget interaction to the idle monitor
func (g *GUI) activity() {
	g.ctl.HandleEvent(idle.Button(1, 0, 0))
}

func (g *GUI) showFileDialog() {
	g.activity()
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		g.open([]string{reader.URI().Path()})
	}, g.window)
}

func (g *GUI) showSeriesDialog() {
	g.activity()
	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		if dir == nil {
			return
		}
		uris, err := dir.List()
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		g.open(seriesFiles(uris))
	}, g.window)
}

func (g *GUI) extractIso() {
	g.activity()
	if err := g.ctl.ExtractIsoSurface(); err != nil {
		dialog.ShowError(err, g.window)
	}
}

func (g *GUI) grab() {
	g.activity()
	if _, err := g.ctl.Grab(); err != nil {
		dialog.ShowError(err, g.window)
	}
}

func (g *GUI) open(files []string) {
	if err := g.ctl.Open(files); err != nil {
		dialog.ShowError(err, g.window)
	}
}

// seriesFiles returns the regular files of a folder listing in name order
func seriesFiles(uris []fyne.URI) []string {
	files := make([]string, 0, len(uris))
	for _, u := range uris {
		if u.Scheme() != "file" {
			continue
		}
		fi, err := os.Stat(u.Path())
		if err != nil || fi.IsDir() {
			continue
		}
		files = append(files, u.Path())
	}
	sort.Strings(files)
	return files
}

func (g *GUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	g.activity()
	urls := make([]string, len(uris))
	for i, u := range uris {
		urls[i] = u.String()
	}
	if err := g.ctl.Drop(urls); err != nil {
		dialog.ShowError(err, g.window)
	}
}

func (g *GUI) onTypedKey(ev *fyne.KeyEvent) {
	g.ctl.HandleEvent(idle.Key(string(ev.Name)))
	switch ev.Name {
	case fyne.KeyQ:
		fyne.CurrentApp().Quit()
	case fyne.KeyT:
		g.ctl.Tack()
	case fyne.KeyC:
		g.ctl.ClearPlanes()
	case fyne.KeyI:
		g.extractIso()
	}
}
