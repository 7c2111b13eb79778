package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"picren/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change is a file event in a watched directory.
type Change struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher reports changes to the files of one or more directories so a
// viewer can refresh its image list.
type Watcher struct {
	// Directories being watched
	directories []string

	// Channel delivering changes
	changes chan Change

	// Channel to signal stop
	stopChan chan struct{}

	// Closed when the event loop has returned
	done chan struct{}

	fsWatcher *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
	closed  bool
}

// Coalesce returns first followed by the changes already buffered on ch.
// It never blocks.
func Coalesce(first Change, ch <-chan Change) []Change {
	batch := []Change{first}
	for {
		select {
		case c, ok := <-ch:
			if !ok {
				return batch
			}
			batch = append(batch, c)
		default:
			return batch
		}
	}
}

// New creates a new directory watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		directories: []string{},
		changes:     make(chan Change, 64),
		stopChan:    make(chan struct{}),
		fsWatcher:   fsWatcher,
	}, nil
}

// AddDirectory adds a directory to watch
func (w *Watcher) AddDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	w.mutex.Lock()
	found := false
	for _, existingDir := range w.directories {
		if existingDir == dir {
			found = true
			break
		}
	}
	if !found {
		w.directories = append(w.directories, dir)
	}
	w.mutex.Unlock()

	log.LogWithFields(log.F("directory", dir)).Debug("Watching directory")
	return nil
}

// RemoveDirectory stops watching dir.
func (w *Watcher) RemoveDirectory(dir string) error {
	if err := w.fsWatcher.Remove(dir); err != nil {
		return fmt.Errorf("failed to remove directory %s from watcher: %w", dir, err)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()
	for i, existingDir := range w.directories {
		if existingDir == dir {
			w.directories = append(w.directories[:i], w.directories[i+1:]...)
			break
		}
	}
	return nil
}

// Changes returns the channel that delivers file changes. It is closed by
// Stop.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins the file watching process
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	if w.closed {
		w.mutex.Unlock()
		return fmt.Errorf("watcher is stopped")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})
	stop, done := w.stopChan, w.done
	w.mutex.Unlock()

	go func() {
		defer close(done)
		w.loop(stop)
	}()

	log.Debugf("Watcher started.")
	return nil
}

func (w *Watcher) loop(stop <-chan struct{}) {
	const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&relevant == 0 {
				continue
			}
			// Directories created inside a watched directory are not images.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					continue
				}
			}

			change := Change{
				Path:      filepath.Clean(event.Name),
				Timestamp: time.Now(),
				Op:        event.Op,
			}

			// Send non-blockingly; a full channel already guarantees a refresh.
			select {
			case w.changes <- change:
			case <-stop:
				return
			default:
				log.LogWithFields(log.F("file", event.Name)).Debug("Change channel is full, dropped event")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-stop:
			return
		}
	}
}

// Stop halts the watcher, releases the fsnotify watcher and closes the
// change channel. A stopped watcher cannot be restarted.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.closed {
		return
	}
	w.closed = true

	if w.running {
		close(w.stopChan)
	}
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	if w.running {
		<-w.done
		w.running = false
	}
	close(w.changes)

	log.Debugf("Watcher stopped.")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// GetDirectories returns the list of directories being watched
func (w *Watcher) GetDirectories() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	dirsCopy := make([]string, len(w.directories))
	copy(dirsCopy, w.directories)
	return dirsCopy
}
