package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long to ignore repeat notifications for the same file.
// Editors fire several per save.
const debounce = 100 * time.Millisecond

// Watcher reports edits to preset files so the menu can pick up tuning
// changes without a restart. Running sessions are unaffected; they hold
// their preset by value.
//
// Events carries the path of each changed preset file. Both channels are
// closed when the watcher shuts down, on Close or on a filesystem error.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	quit    chan struct{}
	closing sync.Once
}

// NewWatcher watches the given directories for preset file changes.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:     fs,
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
		quit:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. The Events and Errors channels close once the
// watch loop has wound down; only the loop ever closes them.
func (w *Watcher) Close() error {
	var err error
	w.closing.Do(func() {
		close(w.quit)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	seen := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isPresetFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := seen[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			seen[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.quit:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.quit:
				return
			}
		case <-w.quit:
			return
		}
	}
}

func isPresetFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
