package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 100 * time.Millisecond

// Watcher accumulates edits to prefab, script, and level files during dev
// runs. The game polls Changed once per tick and rebuilds when the batch
// is non-empty, so a save that touches several files restarts once.
type Watcher struct {
	fs      *fsnotify.Watcher
	closeCh chan struct{}
	once    sync.Once

	mu      sync.Mutex
	pending []string
	lastErr error
	seen    map[string]time.Time
}

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
		fs:      fs,
		closeCh: make(chan struct{}),
		seen:    make(map[string]time.Time),
	}
	go w.run()
	return w, nil
}

// Changed drains the batch of paths edited since the last call, along
// with the most recent watch error. It never blocks.
func (w *Watcher) Changed() ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	batch, err := w.pending, w.lastErr
	w.pending, w.lastErr = nil, nil
	return batch, err
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !watchable(event.Name) {
				continue
			}
			w.record(event.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.lastErr = err
			w.mu.Unlock()
		case <-w.closeCh:
			return
		}
	}
}

// record appends the path unless an event for it landed inside the
// debounce window, which collapses editor double-writes.
func (w *Watcher) record(name string) {
	now := time.Now()
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.seen[name]; ok && now.Sub(t) < debounceWindow {
		return
	}
	w.seen[name] = now
	w.pending = append(w.pending, name)
}

func watchable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo", ".json":
		return true
	}
	return false
}
