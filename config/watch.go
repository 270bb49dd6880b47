package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDelay = 100 * time.Millisecond

// Watcher reloads a controls file when it changes on disk. Reloads are
// delayed until writes settle, and invalid files are reported on Errors
// without replacing the last good controls.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan *Controls
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the directory holding path, so editors that replace
// the file on save are still picked up.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		path:    abs,
		watcher: w,
		Updates: make(chan *Controls, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Latest returns the most recent reload without blocking.
func (w *Watcher) Latest() (*Controls, bool) {
	select {
	case c, ok := <-w.Updates:
		return c, ok && c != nil
	default:
		return nil, false
	}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	var reload <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			reload = time.After(reloadDelay)
		case <-reload:
			reload = nil
			c, err := Load(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(c, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send keeps only the newest value in each channel so a frame loop that
// polls late never reads stale controls.
func (w *Watcher) send(c *Controls, err error) {
	if err != nil {
		select {
		case <-w.Errors:
		default:
		}
		w.Errors <- err
		return
	}
	select {
	case <-w.Updates:
	default:
	}
	w.Updates <- c
}
