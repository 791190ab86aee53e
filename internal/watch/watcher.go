package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher watches model files and delivers debounced change notifications
// on a channel. The render loop drains the channel once per frame, so all
// reload work still happens on the render thread.
type Watcher struct {
	fs       *fsnotify.Watcher
	log      *zap.Logger
	debounce time.Duration
	changes  chan string

	mu      sync.Mutex
	watched map[string]struct{}
	timers  map[string]*time.Timer
}

// New creates a watcher with the given debounce interval
func New(debounce time.Duration, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		fs:       fs,
		log:      log,
		debounce: debounce,
		changes:  make(chan string, 16),
		watched:  make(map[string]struct{}),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Add starts watching a file
func (w *Watcher) Add(file string) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	if err := w.fs.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	w.mu.Lock()
	w.watched[absPath] = struct{}{}
	w.mu.Unlock()
	return nil
}

// Changes returns the channel carrying debounced changed-file paths
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					w.handleChange(event.Name)
				}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				w.log.Warn("watcher error", zap.Error(err))
			}
		}
	}()
}

// handleChange debounces rapid write bursts into a single notification
func (w *Watcher) handleChange(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.watched[path]; !ok {
		return
	}
	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		select {
		case w.changes <- path:
		default:
			w.log.Warn("change notification dropped", zap.String("path", path))
		}
	})
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.fs.Close()
}
