// Package app is the raylib front end of the viewer. It polls input,
// forwards it to the control layer and draws the volume frame, the clip
// planes and a status overlay.
package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/govox/internal/config"
	"github.com/philipparndt/govox/internal/control"
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/internal/logging"
	"github.com/philipparndt/govox/pkg/idle"
	"github.com/rs/zerolog"
)

type App struct {
	Camera      CameraState
	View        ViewState
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState

	ctl    *control.Controller
	engine *engine.Headless
	log    zerolog.Logger
}

// Run opens the window, loads files and runs the main loop until the
// window is closed or Q is pressed.
func Run(cfg config.Config, files []string, log zerolog.Logger) error {
	log = logging.Component(log, "raylib")

	screenWidth := int32(1400)
	screenHeight := int32(900)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "govox")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := newApp(cfg, log)
	app.UI.font = rl.GetFontDefault()

	if cfg.Watch {
		if err := app.setupFileWatcher(); err != nil {
			log.Warn().Err(err).Msg("auto-reload not available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	app.ctl.Start()
	if len(files) > 0 {
		if err := app.ctl.Open(files); err != nil {
			return fmt.Errorf("failed to open files: %w", err)
		}
	}

	for !app.Interaction.quit {
		// Check for window close (ESC is used to hide the help)
		if rl.WindowShouldClose() && !rl.IsKeyPressed(rl.KeyEscape) {
			break
		}

		app.handleReloads()
		app.handleDroppedFiles()
		app.handleInput()
		app.checkIdle()
		app.updateCamera(rl.GetFrameTime())

		app.drawFrame()
	}
	return nil
}

func newApp(cfg config.Config, log zerolog.Logger) *App {
	app := &App{
		View: ViewState{
			toggles:     make(map[control.Toggle]bool),
			placeholder: true,
			sampling:    control.RegularSampling,
		},
		Camera: CameraState{
			distance:    defaultDistance,
			defaultDist: defaultDistance,
			camera: rl.Camera3D{
				Position:   rl.Vector3{X: 0, Y: 0, Z: defaultDistance},
				Target:     rl.Vector3{},
				Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
				Fovy:       45.0,
				Projection: rl.CameraPerspective,
			},
		},
		FileWatch: FileWatchState{
			reload: make(chan string, 1),
		},
		UI: UIState{
			lastIdleCheck: time.Now(),
			showHelp:      true,
		},
		engine: engine.NewHeadless(log),
		log:    log,
	}
	app.ctl = control.New(app.engine, app, cfg, log, control.WithLoadHook(app.watch))
	return app
}

// checkIdle runs the idle check once per idle.CheckInterval
func (app *App) checkIdle() {
	now := time.Now()
	if now.Sub(app.UI.lastIdleCheck) < idle.CheckInterval {
		return
	}
	app.UI.lastIdleCheck = now
	if app.ctl.CheckIdle() {
		app.Camera.spin = 0
	}
}

// drawFrame renders one complete frame
func (app *App) drawFrame() {
	rl.BeginDrawing()
	app.drawContents()
	rl.EndDrawing()
}

// drawContents draws the scene and the overlay into the current target
func (app *App) drawContents() {
	rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

	rl.BeginMode3D(app.Camera.camera)
	app.drawScene()
	rl.EndMode3D()

	app.drawUI()
}
