// Package watcher reports changes to translation files below a workspace
// folder using fsnotify.
package watcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/t3lang/t3lang-shell/internal/domain"
	"github.com/t3lang/t3lang-shell/internal/ports"
)

// Watcher watches every non-hidden directory below a root. Directories
// created later are added as they appear.
type Watcher struct {
	root   string
	notify func(domain.FileWatchEvent)
	logger ports.Logger
	fsw    *fsnotify.Watcher

	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// Start begins watching root. notify is called from the watcher's own
// goroutine for each change to a translation file. logger may be nil.
func Start(root string, notify func(domain.FileWatchEvent), logger ports.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		root:    root,
		notify:  notify,
		logger:  logger,
		fsw:     fsw,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	if err := w.addTree(root); err != nil {
		fsw.Close()
		return nil, err
	}
	go w.loop()
	return w, nil
}

// Root is the watched folder.
func (w *Watcher) Root() string {
	return w.root
}

// Stop ends the watch and waits for the event loop to exit. Safe to call more
// than once.
func (w *Watcher) Stop() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		<-w.stopped
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func (w *Watcher) loop() {
	defer close(w.stopped)
	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.warn("watch error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !domain.IsTranslationFile(event.Name) {
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !strings.HasPrefix(info.Name(), ".") {
				if err := w.addTree(event.Name); err != nil {
					w.warn("watch new directory", err)
				}
			}
		}
		return
	}
	if change, ok := Convert(event); ok {
		w.notify(change)
	}
}

// Convert maps an fsnotify event to a FileWatchEvent. Chmod-only events have
// no counterpart. A rename is reported under the old name; the new name
// arrives as a separate create.
func Convert(event fsnotify.Event) (domain.FileWatchEvent, bool) {
	var kind domain.FileChange
	switch {
	case event.Has(fsnotify.Create):
		kind = domain.FileCreated
	case event.Has(fsnotify.Write):
		kind = domain.FileModified
	case event.Has(fsnotify.Remove):
		kind = domain.FileDeleted
	case event.Has(fsnotify.Rename):
		kind = domain.FileRenamed
	default:
		return domain.FileWatchEvent{}, false
	}
	return domain.FileWatchEvent{Type: kind, Path: event.Name}, true
}

func (w *Watcher) warn(msg string, err error) {
	if w.logger != nil {
		w.logger.Warn(msg, map[string]interface{}{"root": w.root, "error": err.Error()})
	}
}
