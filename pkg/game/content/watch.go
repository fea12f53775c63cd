package content

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reports changes to YAML content files in a directory
type Watcher struct {
	watcher *fsnotify.Watcher
	log     *zap.Logger
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching dir for YAML writes, creates, renames and removes
func Watch(dir string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		log:     log,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	log.Info("watching content", zap.String("dir", dir))
	return watcher, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// run reports a file once it has been quiet for reloadDebounce. Every event
// restarts that file's timer, so the last write of a burst is the one reported.
func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Errors)
	defer close(w.Events)

	stop := make(chan struct{})
	defer close(stop)
	ready := make(chan string)
	pending := make(map[string]*time.Timer)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isContentFile(event.Name) {
				continue
			}
			w.log.Debug("content changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			if t, ok := pending[event.Name]; ok {
				t.Stop()
			}
			name := event.Name
			pending[name] = time.AfterFunc(reloadDebounce, func() {
				select {
				case ready <- name:
				case <-stop:
				}
			})
		case name := <-ready:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				w.log.Warn("content watch error dropped", zap.Error(err))
			}
		case <-w.closeCh:
			return
		}
	}
}

func isContentFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
