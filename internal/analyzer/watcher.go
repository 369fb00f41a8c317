package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"recruitflow/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// RosterWatcher watches the employee roster file and triggers re-analysis
// when it changes. Events are debounced so editors and atomic writes do not
// fire multiple reloads.
type RosterWatcher struct {
	mu sync.RWMutex

	rosterFile  string
	lastModTime time.Time

	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan   chan struct{}
	reloadChan chan struct{}

	reloadCallback func()
	logger         *errors.Logger

	running bool
}

// NewRosterWatcher creates a watcher for the roster file. The callback runs
// on the watcher goroutine after each debounced change.
func NewRosterWatcher(rosterFile string, debounceDelay time.Duration, reloadCallback func(), logger *errors.Logger) *RosterWatcher {
	if debounceDelay == 0 {
		debounceDelay = time.Second
	}

	return &RosterWatcher{
		rosterFile:     rosterFile,
		debounceDelay:  debounceDelay,
		stopChan:       make(chan struct{}),
		reloadChan:     make(chan struct{}, 1), // Buffered to prevent blocking
		reloadCallback: reloadCallback,
		logger:         logger,
	}
}

// Start begins watching the roster file for changes.
func (rw *RosterWatcher) Start() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.running {
		return fmt.Errorf("roster watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	rw.fsWatcher = watcher

	if stat, err := os.Stat(rw.rosterFile); err == nil {
		rw.lastModTime = stat.ModTime()
	}

	if err := rw.addToWatcher(); err != nil {
		rw.cleanupWatcher()
		return err
	}

	rw.running = true
	go rw.watchLoop()

	if rw.logger != nil {
		rw.logger.Info("Roster file watcher started",
			"file", rw.rosterFile,
			"debounce_delay", rw.debounceDelay)
	}
	return nil
}

// Stop stops the roster watcher.
func (rw *RosterWatcher) Stop() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if !rw.running {
		return nil
	}

	close(rw.stopChan)

	if rw.debounceTimer != nil {
		rw.debounceTimer.Stop()
	}

	if rw.fsWatcher != nil {
		if err := rw.fsWatcher.Close(); err != nil {
			if rw.logger != nil {
				rw.logger.LogError(err, "Failed to close file system watcher")
			}
			return err
		}
	}

	rw.running = false

	if rw.logger != nil {
		rw.logger.Info("Roster file watcher stopped")
	}
	return nil
}

// IsRunning reports whether the watcher is active.
func (rw *RosterWatcher) IsRunning() bool {
	rw.mu.RLock()
	defer rw.mu.RUnlock()
	return rw.running
}

func (rw *RosterWatcher) cleanupWatcher() {
	if rw.fsWatcher != nil {
		if closeErr := rw.fsWatcher.Close(); closeErr != nil && rw.logger != nil {
			rw.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
	}
}

// addToWatcher watches the roster file and its directory. The directory
// watch catches atomic writes (rename operations) and files created later.
func (rw *RosterWatcher) addToWatcher() error {
	if err := rw.fsWatcher.Add(rw.rosterFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to watch file %s: %w", rw.rosterFile, err)
	}

	dir := filepath.Dir(rw.rosterFile)
	if err := rw.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	return nil
}

func (rw *RosterWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-rw.fsWatcher.Events:
			if !ok {
				return
			}
			if rw.shouldProcessEvent(event) {
				rw.scheduleReload()
			}

		case err, ok := <-rw.fsWatcher.Errors:
			if !ok {
				return
			}
			if rw.logger != nil {
				rw.logger.LogError(err, "Roster watcher error")
			}

		case <-rw.reloadChan:
			if rw.hasFileChanged() {
				if rw.logger != nil {
					rw.logger.Info("Roster file changed, re-running analysis",
						"file", rw.rosterFile)
				}
				rw.reloadCallback()
			}

		case <-rw.stopChan:
			return
		}
	}
}

func (rw *RosterWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Name != rw.rosterFile && filepath.Base(event.Name) != filepath.Base(rw.rosterFile) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (rw *RosterWatcher) hasFileChanged() bool {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	stat, err := os.Stat(rw.rosterFile)
	if err != nil {
		if os.IsNotExist(err) && !rw.lastModTime.IsZero() {
			rw.lastModTime = time.Time{}
			return true
		}
		return false
	}

	if rw.lastModTime.IsZero() || stat.ModTime().After(rw.lastModTime) {
		rw.lastModTime = stat.ModTime()
		return true
	}
	return false
}

func (rw *RosterWatcher) scheduleReload() {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.debounceTimer != nil {
		rw.debounceTimer.Stop()
	}

	rw.debounceTimer = time.AfterFunc(rw.debounceDelay, func() {
		select {
		case rw.reloadChan <- struct{}{}:
		default:
			// reload already scheduled
		}
	})
}
