// Package watcher reports changes of loaded data files so the viewer can
// reload them.
package watcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce collapses bursts of writes while a file is being saved
const DefaultDebounce = 500 * time.Millisecond

// FileWatcher watches a set of files and calls back once per burst of changes.
// The callback runs on a timer goroutine; callers hand it over to their UI thread.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	files    map[string]bool
	callback func(string)
	debounce time.Duration
	timer    *time.Timer
	log      zerolog.Logger
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration, log zerolog.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  w,
		files:    make(map[string]bool),
		debounce: debounce,
		log:      log,
	}, nil
}

// Watch replaces the watched set with files.
// callback receives the path of the file that changed last in a burst.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if err := fw.removeAllLocked(); err != nil {
		fw.callback = nil
		return fmt.Errorf("failed to release watched files: %w", err)
	}
	fw.callback = callback
	for _, file := range files {
		if err := fw.addLocked(file); err != nil {
			_ = fw.removeAllLocked()
			fw.callback = nil
			return err
		}
	}
	fw.log.Debug().Int("files", len(fw.files)).Msg("watching for changes")

	return nil
}

func (fw *FileWatcher) addLocked(file string) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	if err := fw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}
	fw.files[absPath] = true
	return nil
}

// Start begins watching for file changes
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					fw.handleFileChange(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.log.Warn().Err(err).Msg("watcher error")
			}
		}
	}()
}

// handleFileChange restarts the debounce timer for a changed file
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if !fw.files[filePath] || fw.callback == nil {
		return
	}
	if fw.timer != nil {
		fw.timer.Stop()
	}
	callback := fw.callback
	fw.timer = time.AfterFunc(fw.debounce, func() {
		callback(filePath)
	})
}

// Files returns the number of watched files
func (fw *FileWatcher) Files() int {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return len(fw.files)
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()
	return fw.watcher.Close()
}

// RemoveAll stops watching every file
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.removeAllLocked()
}

func (fw *FileWatcher) removeAllLocked() error {
	var firstErr error
	for file := range fw.files {
		// files replaced by a rename have already lost their watch
		err := fw.watcher.Remove(file)
		if err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) && firstErr == nil {
			firstErr = err
		}
	}
	fw.files = make(map[string]bool)
	if fw.timer != nil {
		fw.timer.Stop()
		fw.timer = nil
	}
	return firstErr
}
