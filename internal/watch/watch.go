// Package watch reports changes to a single file so the preview can
// recompile the shader without restarting.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultSettle is how long a file must stay quiet before a change is
// reported. Editors often write a file in several steps.
const DefaultSettle = 100 * time.Millisecond

// Watcher tracks one file. The directory is watched rather than the file
// so that editors which replace the file on save are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	target  string
	settle  time.Duration
	log     *zap.Logger
	now     func() time.Time

	pending   bool
	lastEvent time.Time
}

// New starts watching path.
func New(path string, settle time.Duration, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &Watcher{
		watcher: w,
		target:  target,
		settle:  settle,
		log:     log,
		now:     time.Now,
	}, nil
}

// Changed drains pending notifications without blocking and reports true
// once per burst of writes, after the file has been quiet for the settle time.
func (w *Watcher) Changed() bool {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return w.flush()
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			w.pending = true
			w.lastEvent = w.now()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return w.flush()
			}
			w.log.Warn("shader watch error", zap.Error(err))
		default:
			return w.flush()
		}
	}
}

func (w *Watcher) flush() bool {
	if !w.pending || w.now().Sub(w.lastEvent) < w.settle {
		return false
	}
	w.pending = false
	return true
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
