package app

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/govox/pkg/idle"
	"github.com/philipparndt/govox/pkg/slider"
)

// dragTicks is the number of raw slider ticks per dragged pixel
const dragTicks = slider.Factor / 2

var mouseButtons = []rl.MouseButton{rl.MouseLeftButton, rl.MouseRightButton, rl.MouseMiddleButton}

// handleInput processes user input
func (app *App) handleInput() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		app.ctl.HandleEvent(idle.Key(strconv.Itoa(int(key))))
		app.perform(actionForKey(key))
	}

	pos := rl.GetMousePosition()
	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b) {
			app.ctl.HandleEvent(idle.Button(int(b), float64(pos.X), float64(pos.Y)))
		}
		if rl.IsMouseButtonReleased(b) {
			app.ctl.HandleEvent(idle.Event{Kind: idle.ButtonRelease, Button: int(b), X: float64(pos.X), Y: float64(pos.Y)})
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.ctl.HandleEvent(idle.Event{Kind: idle.Wheel, X: float64(pos.X), Y: float64(pos.Y)})
		step := 1
		if wheel < 0 {
			step = -1
		}
		app.ctl.StepSlider(slider.Zoom, step)
	}

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		app.ctl.HandleEvent(idle.Move(float64(pos.X), float64(pos.Y)))
	}

	// Drag with the left button turns the volume
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.dragging = true
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Interaction.dragging = false
	}
	if app.Interaction.dragging && (delta.X != 0 || delta.Y != 0) {
		app.ctl.SliderChanged(slider.Rotation, app.View.sliders[slider.Rotation]+int(delta.X)*dragTicks)
		app.ctl.SliderChanged(slider.Tilt, app.View.sliders[slider.Tilt]+int(delta.Y)*dragTicks)
	}
	app.Interaction.lastMousePos = pos
}

// perform runs the action bound to a key
func (app *App) perform(a Action) {
	if t, ok := toggleForAction(a); ok {
		app.ctl.SetToggle(t, !app.View.toggles[t])
		app.View.toggles[t] = !app.View.toggles[t]
		return
	}

	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	switch a {
	case ActionQuit:
		app.Interaction.quit = true
	case ActionTack:
		app.ctl.Tack()
	case ActionClear:
		app.ctl.ClearPlanes()
	case ActionSampling:
		s := nextSampling(app.View.sampling)
		app.ctl.SetSampling(s)
		app.View.sampling = s
	case ActionNextSlider:
		dir := 1
		if shift {
			dir = -1
		}
		app.Interaction.selected = nextSlider(app.Interaction.selected, dir)
	case ActionStepUp:
		app.ctl.StepSlider(app.Interaction.selected, 1)
	case ActionStepDown:
		app.ctl.StepSlider(app.Interaction.selected, -1)
	case ActionPageUp:
		app.ctl.PageSlider(app.Interaction.selected, 1)
	case ActionPageDown:
		app.ctl.PageSlider(app.Interaction.selected, -1)
	case ActionResetDefaults:
		app.ctl.ResetDefaults()
		app.Camera.spin = 0
	case ActionResetInteractions:
		app.ctl.ResetInteractions()
	case ActionReload:
		if err := app.ctl.Reload(); err != nil {
			app.log.Error().Err(err).Msg("reload failed")
		}
	case ActionUnload:
		app.ctl.Unload()
	case ActionExtractIso:
		if err := app.ctl.ExtractIsoSurface(); err != nil {
			app.log.Warn().Err(err).Msg("iso surface not extracted")
		}
	case ActionClearIso:
		app.ctl.ClearIsoSurface()
	case ActionStereo:
		m := nextStereo(app.View.stereo)
		app.ctl.SetStereo(m)
		app.View.stereo = m
	case ActionGrab:
		if _, err := app.ctl.Grab(); err != nil {
			app.log.Error().Err(err).Msg("grab failed")
		}
	case ActionHelp:
		app.UI.showHelp = !app.UI.showHelp
	}
}
