package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/govox/pkg/watcher"
)

// handleDroppedFiles opens files dropped onto the window
func (app *App) handleDroppedFiles() {
	if !rl.IsFileDropped() {
		return
	}
	files := rl.LoadDroppedFiles()
	rl.UnloadDroppedFiles()

	app.log.Debug().Strs("files", files).Msg("files dropped")
	if err := app.ctl.Open(files); err != nil {
		app.log.Error().Err(err).Msg("dropped files not loaded")
	}
}

// setupFileWatcher creates the watcher used for auto-reload
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, app.log)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	fw.Start()
	app.FileWatch.fileWatcher = fw
	return nil
}

// watch replaces the watched files after a successful load
func (app *App) watch(paths []string) {
	if app.FileWatch.fileWatcher == nil {
		return
	}
	err := app.FileWatch.fileWatcher.Watch(paths, func(changed string) {
		select {
		case app.FileWatch.reload <- changed:
		default:
		}
	})
	if err != nil {
		app.log.Warn().Err(err).Msg("failed to watch loaded files")
	}
}

// handleReloads reloads on the main thread after the watcher reported a change
func (app *App) handleReloads() {
	select {
	case changed := <-app.FileWatch.reload:
		app.log.Info().Str("file", changed).Msg("file changed, reloading")
		if err := app.ctl.Reload(); err != nil {
			app.log.Error().Err(err).Msg("reload failed")
		}
	default:
	}
}
