package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/govox/internal/control"
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/pkg/slider"
)

var _ control.View = (*App)(nil)

func (app *App) ShowStatus(text string) {
	app.View.status = text
}

// Repaint is a no-op: the main loop draws every frame, after input handling
func (app *App) Repaint() {}

// Redraw draws a frame immediately; it is used while a load blocks the loop
func (app *App) Redraw() {
	app.drawFrame()
}

func (app *App) ProcessEvents() {
	rl.PollInputEvents()
}

func (app *App) SetSlider(c slider.Control, raw int) {
	app.View.sliders[c] = raw
}

func (app *App) SetToggle(t control.Toggle, on bool) {
	app.View.toggles[t] = on
}

func (app *App) SetSampling(s control.Sampling) {
	app.View.sampling = s
}

func (app *App) SetStereo(m engine.StereoMode) {
	app.View.stereo = m
}

func (app *App) SetLabel(text string) {
	app.View.label = text
}

func (app *App) RemovePlaceholder() {
	app.View.placeholder = false
}

// Grab renders a frame into an offscreen texture and saves it. The window
// is not touched, so no input events are consumed.
func (app *App) Grab(path string) error {
	target := rl.LoadRenderTexture(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	app.drawContents()
	rl.EndTextureMode()

	img := rl.LoadImageFromTexture(target.Texture)
	defer rl.UnloadImage(img)
	// render textures are stored bottom-up
	rl.ImageFlipVertical(img)
	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("failed to write %s", path)
	}
	return nil
}
