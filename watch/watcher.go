// Package watch reparses expression files whenever they change on disk.
// Events come from fsnotify and are debounced per file, so editors that
// write in bursts trigger a single reparse.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/parc/calc"
	"github.com/dhamidi/parc/config"
)

// ResultFunc receives the outcome of every reparse. On success err is nil
// and node holds the tree; on failure node is nil.
type ResultFunc func(path string, node *calc.Node, err error)

type Watcher struct {
	cfg   *config.Config
	fn    ResultFunc
	fsw   *fsnotify.Watcher
	log   commonlog.Logger
	roots []string

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// New creates a watcher that parses files matching cfg.Extensions and
// reports each result through fn. A nil cfg uses the defaults.
func New(cfg *config.Config, fn ResultFunc) (*Watcher, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	return &Watcher{
		cfg:    cfg,
		fn:     fn,
		fsw:    fsw,
		log:    commonlog.GetLogger("parc.watch"),
		timers: make(map[string]*time.Timer),
	}, nil
}

// Add registers a file or directory. Directories are watched recursively;
// hidden subdirectories are skipped.
func (w *Watcher) Add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if !info.IsDir() {
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		w.roots = append(w.roots, path)
		return nil
	}

	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if hidden(p) && p != path {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	w.roots = append(w.roots, path)
	return nil
}

// Run parses everything under the registered roots once, then blocks
// handling change events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.scanAll()

	w.log.Infof("watching %s (debounce %s)", strings.Join(w.roots, ", "), w.cfg.Debounce.Duration())

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watcher event channel closed")
			}
			w.handle(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			w.log.Errorf("%s", err)
		}
	}
}

// Close stops the underlying watcher and cancels pending reparses.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !hidden(event.Name) {
				w.fsw.Add(event.Name)
			}
			return
		}
	}

	if !w.wants(event.Name) {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename):
		w.forget(event.Name)
		w.log.Infof("dropped %s", event.Name)
	case event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create):
		w.schedule(event.Name)
	}
}

func (w *Watcher) scanAll() {
	for _, root := range w.roots {
		filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if hidden(p) && p != root {
					return filepath.SkipDir
				}
				return nil
			}
			if w.wants(p) {
				w.reparse(p)
			}
			return nil
		})
	}
}

// schedule arms the per-file debounce timer, replacing any pending one.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.cfg.Debounce.Duration(), func() {
		w.fire(path)
	})
}

// fire runs the debounced reparse unless the watcher closed in between.
func (w *Watcher) fire(path string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	delete(w.timers, path)
	w.mu.Unlock()
	w.reparse(path)
}

func (w *Watcher) forget(path string) {
	w.mu.Lock()
	if t, ok := w.timers[path]; ok {
		t.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()
}

// reparse hands the outcome to the callback. Parse failures are results,
// not watcher errors, so they are logged at debug level only.
func (w *Watcher) reparse(path string) {
	node, err := w.parse(path)
	if err != nil {
		w.log.Debugf("%s: %s", path, err)
	} else {
		w.log.Debugf("parsed %s", path)
	}
	if w.fn != nil {
		w.fn(path, node, err)
	}
}

func (w *Watcher) parse(path string) (*calc.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return calc.ParseFile(string(data), path)
}

// wants reports whether path is a non-hidden file with a watched extension.
func (w *Watcher) wants(path string) bool {
	if hidden(path) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range w.cfg.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func hidden(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
