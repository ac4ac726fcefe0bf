package prefabs

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounce = 100 * time.Millisecond

// Watcher reports changed prefab and script files on Events. Run owns the
// underlying fsnotify watcher and closes it when it returns.
type Watcher struct {
	watcher *fsnotify.Watcher
	log     *zap.Logger
	Events  chan string
}

func NewWatcher(log *zap.Logger, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		watcher: w,
		log:     log.Named("watch"),
		Events:  make(chan string, 16),
	}, nil
}

// Run forwards events until ctx is done or the watcher fails. Events is
// closed on return. A full Events channel drops the event; the next write to
// the same file reports it again.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.Events)
	defer w.watcher.Close()

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now

			name := filepath.Base(event.Name)
			select {
			case w.Events <- name:
				w.log.Debug("changed", zap.String("file", name))
			default:
				w.log.Warn("dropped change, reader is behind", zap.String("file", name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch failed", zap.Error(err))
		case <-ctx.Done():
			return nil
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
