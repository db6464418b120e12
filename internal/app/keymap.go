package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/govox/internal/control"
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/pkg/slider"
)

// Action is what a key press does
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTack
	ActionClear
	ActionFlipXYPlus
	ActionFlipXYMinus
	ActionFlipYZPlus
	ActionFlipYZMinus
	ActionRotate
	ActionReverse
	ActionInverse
	ActionGradMag
	ActionSampling
	ActionNextSlider
	ActionStepUp
	ActionStepDown
	ActionPageUp
	ActionPageDown
	ActionResetDefaults
	ActionResetInteractions
	ActionReload
	ActionUnload
	ActionShowPlane
	ActionShowIso
	ActionClipIso
	ActionExtractIso
	ActionClearIso
	ActionStereo
	ActionGrab
	ActionHelp
)

var keyActions = map[int32]Action{
	rl.KeyQ:         ActionQuit,
	rl.KeyT:         ActionTack,
	rl.KeyC:         ActionClear,
	rl.KeyOne:       ActionFlipXYPlus,
	rl.KeyTwo:       ActionFlipXYMinus,
	rl.KeyThree:     ActionFlipYZPlus,
	rl.KeyFour:      ActionFlipYZMinus,
	rl.KeyR:         ActionRotate,
	rl.KeyV:         ActionReverse,
	rl.KeyN:         ActionInverse,
	rl.KeyG:         ActionGradMag,
	rl.KeyS:         ActionSampling,
	rl.KeyTab:       ActionNextSlider,
	rl.KeyUp:        ActionStepUp,
	rl.KeyRight:     ActionStepUp,
	rl.KeyDown:      ActionStepDown,
	rl.KeyLeft:      ActionStepDown,
	rl.KeyPageUp:    ActionPageUp,
	rl.KeyPageDown:  ActionPageDown,
	rl.KeyHome:      ActionResetDefaults,
	rl.KeyBackspace: ActionResetInteractions,
	rl.KeyF5:        ActionReload,
	rl.KeyX:         ActionUnload,
	rl.KeyP:         ActionShowPlane,
	rl.KeyJ:         ActionShowIso,
	rl.KeyK:         ActionClipIso,
	rl.KeyI:         ActionExtractIso,
	rl.KeyU:         ActionClearIso,
	rl.KeyM:         ActionStereo,
	rl.KeyF12:       ActionGrab,
	rl.KeyH:         ActionHelp,
	rl.KeyEscape:    ActionHelp,
}

// actionForKey maps a raylib key code to its action
func actionForKey(key int32) Action {
	return keyActions[key]
}

var flipActions = map[Action]control.Toggle{
	ActionFlipXYPlus:  control.FlipXYPlus,
	ActionFlipXYMinus: control.FlipXYMinus,
	ActionFlipYZPlus:  control.FlipYZPlus,
	ActionFlipYZMinus: control.FlipYZMinus,
	ActionRotate:      control.Rotate,
	ActionReverse:     control.Reverse,
	ActionInverse:     control.InverseMode,
	ActionGradMag:     control.GradientMagnitude,
	ActionShowPlane:   control.ShowPlane,
	ActionShowIso:     control.ShowIso,
	ActionClipIso:     control.ClipIso,
}

// toggleForAction returns the toggle an action flips, if any
func toggleForAction(a Action) (control.Toggle, bool) {
	t, ok := flipActions[a]
	return t, ok
}

// nextSampling cycles under, regular and over sampling
func nextSampling(s control.Sampling) control.Sampling {
	switch s {
	case control.Undersampling:
		return control.RegularSampling
	case control.RegularSampling:
		return control.Oversampling
	default:
		return control.Undersampling
	}
}

// nextStereo cycles through the stereo modes
func nextStereo(m engine.StereoMode) engine.StereoMode {
	modes := engine.StereoModes()
	for i, mode := range modes {
		if mode == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return engine.StereoOff
}

// nextSlider cycles through the sliders in either direction
func nextSlider(c slider.Control, dir int) slider.Control {
	n := int(slider.Absorption) + 1
	return slider.Control(((int(c)+dir)%n + n) % n)
}
