package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/govox/internal/control"
	"github.com/philipparndt/govox/pkg/slider"
	"github.com/philipparndt/govox/version"
)

var helpLines = []string{
	"Drag: rotate/tilt   Wheel: zoom",
	"Tab: next slider   Up/Down: step   PgUp/PgDn: page",
	"T: tack clip plane   C: clear planes",
	"1-4: flip +XY -XY +YZ -YZ",
	"R: rotate   V: reverse   N: inverse   G: gradient magnitude",
	"S: sampling   M: stereo   P: show plane",
	"I: extract iso   U: clear iso   J: show iso   K: clip iso",
	"Home: defaults   Backspace: reset",
	"F5: reload   X: unload   F12: grab",
	"H: help   Q: quit",
}

var sliderOrder = []slider.Control{slider.Clip, slider.Zoom, slider.Rotation, slider.Tilt, slider.Emission, slider.Absorption}

var toggleOrder = []control.Toggle{
	control.Rotate, control.Reverse, control.InverseMode, control.GradientMagnitude,
	control.FlipXYPlus, control.FlipXYMinus, control.FlipYZPlus, control.FlipYZMinus,
	control.ShowPlane, control.ShowIso, control.ClipIso,
}

// drawUI draws the status overlay
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	if app.View.placeholder {
		hint := "Drop a volume, a series or a .geo surface here"
		size := rl.MeasureTextEx(app.UI.font, hint, 24, 1)
		rl.DrawTextEx(app.UI.font, hint, rl.Vector2{X: (screenWidth - size.X) / 2, Y: screenHeight/2 + 120}, 24, 1, rl.LightGray)
	}

	// === DATA ===
	label := app.View.label
	if label == "" {
		label = "-"
	}
	rl.DrawTextEx(app.UI.font, "Data:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, "  "+label, rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight * 2

	// === SLIDERS ===
	rl.DrawTextEx(app.UI.font, "Sliders:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	for _, c := range sliderOrder {
		color := rl.White
		marker := "  "
		if c == app.Interaction.selected {
			color = rl.Green
			marker = "> "
		}
		text := fmt.Sprintf("%s%-10s %7.2f", marker, c, slider.Dequantize(app.View.sliders[c]))
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: 10, Y: y}, fontSize14, 1, color)
		y += lineHeight
	}
	y += lineHeight

	// === TOGGLES ===
	rl.DrawTextEx(app.UI.font, "Toggles:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	for _, t := range toggleOrder {
		state, color := "off", rl.Gray
		if app.View.toggles[t] {
			state, color = "on", rl.Green
		}
		rl.DrawTextEx(app.UI.font, fmt.Sprintf("  %-8s %s", t, state), rl.Vector2{X: 10, Y: y}, fontSize14, 1, color)
		y += lineHeight
	}
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  sampling %s", app.View.sampling), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  stereo   %s", app.View.stereo), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight

	planes := 0
	for _, s := range app.ctl.ClipPlanes() {
		if s.Enabled {
			planes++
		}
	}
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  clip planes %d", planes), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)

	// Status line (bottom-left corner)
	if app.View.status != "" {
		rl.DrawRectangle(0, int32(screenHeight-30), int32(screenWidth), 30, rl.NewColor(0, 0, 0, 200))
		rl.DrawTextEx(app.UI.font, app.View.status, rl.Vector2{X: 10, Y: screenHeight - 24}, fontSize16, 1, rl.Yellow)
	}

	// Help (top-right corner)
	if app.UI.showHelp {
		hy := float32(10)
		for _, line := range helpLines {
			size := rl.MeasureTextEx(app.UI.font, line, fontSize14, 1)
			rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: screenWidth - size.X - 10, Y: hy}, fontSize14, 1, rl.LightGray)
			hy += lineHeight
		}
	}

	v := "govox " + version.GetFullVersion()
	size := rl.MeasureTextEx(app.UI.font, v, fontSize14, 1)
	rl.DrawTextEx(app.UI.font, v, rl.Vector2{X: screenWidth - size.X - 10, Y: screenHeight - 50}, fontSize14, 1, rl.Gray)
}
