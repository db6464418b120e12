package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/govox/internal/control"
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/pkg/slider"
	"github.com/philipparndt/govox/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera      rl.Camera3D
	distance    float32
	spin        float64 // degrees turned by automatic rotation
	defaultDist float32 // distance at zoom 0
}

// ViewState mirrors what the controller pushed to the view
type ViewState struct {
	sliders     [slider.Absorption + 1]int
	toggles     map[control.Toggle]bool
	sampling    control.Sampling
	stereo      engine.StereoMode
	label       string
	status      string
	placeholder bool
}

// InteractionState holds mouse and keyboard state
type InteractionState struct {
	selected     slider.Control // slider moved by the arrow keys
	dragging     bool
	lastMousePos rl.Vector2
	quit         bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher *watcher.FileWatcher
	reload      chan string // changed file, handed from the watcher goroutine
}

// UIState holds UI-related state
type UIState struct {
	font          rl.Font
	lastIdleCheck time.Time
	showHelp      bool
}
